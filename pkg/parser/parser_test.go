package parser

import (
	"strings"
	"testing"
)

func TestExtractText(t *testing.T) {
	p := &Parser{}

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "block text joined by newlines",
			html: "<html><body><h1> 标题 </h1><p>第一段</p><p>  第二段\n</p></body></html>",
			want: "标题\n第一段\n第二段",
		},
		{
			name: "inline elements become separate fragments",
			html: "<p>hello <b>bold</b> world</p>",
			want: "hello\nbold\nworld",
		},
		{
			name: "scripts styles and comments dropped",
			html: `<html><head><title>页面</title><style>p{color:red}</style><script>var x = "脚本";</script></head>
<body><!-- 注释 --><noscript>请启用</noscript><p>正文</p></body></html>`,
			want: "页面\n正文",
		},
		{
			name: "whitespace only document",
			html: "<html><body>  \n\t </body></html>",
			want: "",
		},
		{
			name: "empty input",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ExtractText(tt.html)
			if err != nil {
				t.Fatalf("ExtractText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractArticle(t *testing.T) {
	p := &Parser{}
	paragraph := strings.Repeat("这是一篇关于数据可视化的文章，词频统计可以帮助我们理解文本的主题。", 10)
	html := `<html><head><title>词频分析</title></head><body>
<nav><a href="/">首页</a><a href="/about">关于我们</a></nav>
<article><h1>词频分析</h1><p>` + paragraph + `</p><p>` + paragraph + `</p></article>
<footer>版权所有</footer></body></html>`

	got, err := p.ExtractArticle("https://example.com/post", html)
	if err != nil {
		t.Fatalf("ExtractArticle() error = %v", err)
	}
	if !strings.Contains(got, "数据可视化") {
		t.Errorf("ExtractArticle() = %q, want article body", got)
	}
	if !strings.HasPrefix(got, "词频分析") {
		t.Errorf("ExtractArticle() = %q, want title first", got)
	}
}

func TestExtractArticle_InvalidURL(t *testing.T) {
	p := &Parser{}
	if _, err := p.ExtractArticle("://bad", "<p>x</p>"); err == nil {
		t.Error("ExtractArticle() error = nil, want error for invalid URL")
	}
}
