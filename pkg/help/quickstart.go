package help

const QuickstartYAML = `# wordviz Quick Start

chart_kinds:
  wordcloud: "词云 - word cloud, font size by count (default)"
  bar: "柱状图 - one bar per word"
  line: "折线图 - counts as a line over the ranking"
  pie: "饼图 - rose pie with a scrolling legend"
  radar: "雷达图 - one axis per word"
  scatter: "散点图 - rank on x, count on y"
  funnel: "漏斗图 - words sorted by count, widest first"

commands:
  basic: |
    wordviz analyze https://example.com

  pick_chart: |
    wordviz analyze --url "https://example.com" --chart bar
    wordviz analyze --url "https://example.com" --chart 饼图

  threshold: |
    wordviz analyze --url "https://example.com" --min-freq 3

  article_only: |
    wordviz analyze --url "https://example.com/post" --readability --stopwords

  reports: |
    wordviz analyze --url "https://example.com" --format markdown --no-chart > report.md
    wordviz analyze --url "https://example.com" --format json | jq '.top[0]'

  web_ui: |
    wordviz serve --addr 127.0.0.1:8080
    # open http://127.0.0.1:8080/

  list_kinds: |
    wordviz kinds

config:
  file: "$XDG_CONFIG_HOME/wordviz/config.yaml (or --config path)"
  env: "WORDVIZ_* variables and a .env file override the file"
  precedence: "defaults < config file < environment < flags"
  example: |
    http:
      timeout: 30s
      user_agent: "wordviz/1.0"
    analysis:
      min_frequency: 2
      top_n: 20
      chart: pie
      stopwords: true
    chart:
      height: 600
    server:
      addr: 127.0.0.1:8080

output:
  - "Report on stdout: 'word: count' per line, highest count first"
  - "Ties keep the order words first appeared on the page"
  - "Chart page: wordviz-<host>-<path>-<kind>-<date>.html in the working dir"
  - "Logs: JSON on stderr (--quiet for errors only, --verbose for debug)"

error_behavior:
  - "Malformed URLs: fail fast before fetching"
  - "Unreachable page or HTTP 4xx/5xx: message on stderr, no chart"
  - "Unknown chart name: warning, no chart, report still printed"
  - "Page without text: empty report and an empty chart"
  - "Exit codes: 0=success, 1=bad input, 2=retrieval or output failure"
`
