package htmldoc_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-modelgen/pkg/adapters/htmldoc"
	"github.com/goliatone/go-modelgen/pkg/catalog"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/testsupport"
)

func TestAdapterContract(t *testing.T) {
	testsupport.RunAdapterContract(t, htmldoc.New())
}

func TestSanitizeDescription(t *testing.T) {
	cases := map[string]string{
		"":                                     "",
		"  plain text  ":                       "plain text",
		"Hi <b>there</b>":                      "Hi <b>there</b>",
		"<script>alert(1)</script>safe":        "safe",
		`<span onclick="x()">click</span>`:     "click",
		`<img src="x" onerror="alert(1)">done`: "done",
	}
	for input, want := range cases {
		if got := htmldoc.SanitizeDescription(input); got != want {
			t.Errorf("SanitizeDescription(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTransform_EscapesNames(t *testing.T) {
	def := model.New("A<B>").String("x<y>", model.Description("<script>bad()</script>ok")).Build()

	out, err := htmldoc.New().Transform(def)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if strings.Contains(out, "<script>") || strings.Contains(out, "<y>") {
		t.Fatalf("expected markup to be escaped or stripped, got:\n%s", out)
	}
	if !strings.Contains(out, "<h2>A&lt;B&gt;</h2>") {
		t.Fatalf("expected escaped heading, got:\n%s", out)
	}
}

func TestTransform_EmptyModel(t *testing.T) {
	out, err := htmldoc.New(htmldoc.WithClass("")).Transform(model.New("Empty").Build())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	want := "<section id=\"model-empty\">\n  <h2>Empty</h2>\n  <p class=\"empty\">No fields.</p>\n</section>"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestAnchorID(t *testing.T) {
	if got := htmldoc.AnchorID("BlogPost"); got != "model-blog-post" {
		t.Fatalf("expected model-blog-post, got %q", got)
	}
	if got := htmldoc.AnchorID(" "); got != "model" {
		t.Fatalf("expected model, got %q", got)
	}
}

func TestTransform_Golden(t *testing.T) {
	for _, def := range []model.Definition{catalog.User(), catalog.Order()} {
		def := def
		t.Run(def.Name, func(t *testing.T) {
			out, err := htmldoc.New().Transform(def)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			name := strings.ToLower(def.Name) + ".golden.html"
			testsupport.AssertGolden(t, filepath.Join("testdata", name), out)
		})
	}
}
