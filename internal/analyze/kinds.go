package analyze

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-wordviz/pkg/chart"
)

// KindsAction lists the chart kinds accepted by --chart.
func KindsAction(c *cli.Context) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tLABEL")
	for _, k := range chart.AllKinds() {
		fmt.Fprintf(tw, "%s\t%s\n", k.String(), k.Label())
	}
	return tw.Flush()
}
