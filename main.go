package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-wordviz/internal/analyze"
	"github.com/dtnitsch/web-wordviz/internal/serve"
	"github.com/dtnitsch/web-wordviz/pkg/help"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "wordviz",
		Usage: "count the words on a web page and chart the most frequent ones",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file (default $XDG_CONFIG_HOME/wordviz/config.yaml)", EnvVars: []string{"WORDVIZ_CONFIG"}},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output"},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "fetch a page, print its top words and write a chart",
				ArgsUsage: "[url]",
				Flags:     analyze.Flags(),
				Action:    analyze.AnalyzeAction,
			},
			{
				Name:   "serve",
				Usage:  "run the interactive web UI",
				Flags:  serve.Flags(),
				Action: serve.ServeAction,
			},
			{
				Name:   "kinds",
				Usage:  "list the chart kinds",
				Action: analyze.KindsAction,
			},
			{
				Name:  "quickstart",
				Usage: "print a short usage guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
		},
	}
}
