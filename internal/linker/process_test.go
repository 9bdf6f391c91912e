package linker

import (
	"strings"
	"testing"
)

func TestProcessWithoutImplicit(t *testing.T) {
	res, err := Process("React here", bare("React"), ExtendedOptions{Options: DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	if res.Content != "[[React]] here" || res.ImplicitEntities != nil {
		t.Fatalf("result = %+v", res)
	}
}

func TestProcessWrapsImplicitEntities(t *testing.T) {
	opts := ExtendedOptions{
		Options:          DefaultOptions(),
		DetectImplicit:   true,
		ImplicitPatterns: []string{PatternProperNouns},
	}
	res, err := Process("React with Alice Johnson", bare("React"), opts)
	if err != nil {
		t.Fatal(err)
	}
	want := "[[React]] with [[Alice Johnson]]"
	if res.Content != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
	if len(res.ImplicitEntities) != 1 || res.ImplicitEntities[0].Text != "Alice Johnson" {
		t.Fatalf("implicitEntities = %+v", res.ImplicitEntities)
	}
	if res.LinksAdded != 1 {
		t.Fatalf("linksAdded = %d, want 1 (implicit wraps are reported separately)", res.LinksAdded)
	}
}

func TestProcessQuotedTermDropsQuotes(t *testing.T) {
	opts := ExtendedOptions{
		Options:          DefaultOptions(),
		DetectImplicit:   true,
		ImplicitPatterns: []string{PatternQuotedTerms},
	}
	res, err := Process(`she said "microservices" loudly`, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := `she said [[microservices]] loudly`
	if res.Content != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
}

func TestProcessSkipsKnownAndLinkedNames(t *testing.T) {
	opts := ExtendedOptions{
		Options:          DefaultOptions(),
		DetectImplicit:   true,
		ImplicitPatterns: []string{PatternProperNouns, PatternSingleCaps},
	}
	// "Alice Johnson" is a known entity and gets linked by the first
	// pass; the implicit pass must not wrap it again elsewhere, and the
	// note's own title is suppressed as a self-link.
	opts.NotePath = "people/Carol Danvers.md"
	content := "Alice Johnson met Alice Johnson and Carol Danvers"
	res, err := Process(content, bare("Alice Johnson"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(res.Content, "[[Carol Danvers]]") {
		t.Fatalf("self-link was not suppressed: %q", res.Content)
	}
	if got := strings.Count(res.Content, "[[Alice Johnson]]"); got != 1 {
		t.Fatalf("known entity wrapped %d times: %q", got, res.Content)
	}
}

func TestProcessImplicitDetectsOnRewrittenContent(t *testing.T) {
	opts := ExtendedOptions{
		Options:          DefaultOptions(),
		DetectImplicit:   true,
		ImplicitPatterns: []string{PatternAcronyms},
	}
	// GRPC sits right after the span the first pass rewrites; its
	// offsets must be computed against the rewritten string.
	res, err := Process("React and GRPC", bare("React"), opts)
	if err != nil {
		t.Fatal(err)
	}
	want := "[[React]] and [[GRPC]]"
	if res.Content != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
}

func TestProcessPropagatesImplicitConfigError(t *testing.T) {
	opts := ExtendedOptions{
		Options:         DefaultOptions(),
		DetectImplicit:  true,
		ExcludePatterns: []string{"["},
	}
	if _, err := Process("content", nil, opts); err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}

func TestProcessRoundTripWithImplicit(t *testing.T) {
	opts := ExtendedOptions{
		Options:        DefaultOptions(),
		DetectImplicit: true,
	}
	content := "met Alice Johnson about React and the API"
	res, err := Process(content, bare("React", "API"), opts)
	if err != nil {
		t.Fatal(err)
	}
	open := strings.Count(res.Content, "[[")
	closed := strings.Count(res.Content, "]]")
	if open != closed {
		t.Fatalf("unbalanced brackets in %q", res.Content)
	}
	if got := stripWikilinks(res.Content); got != content {
		t.Fatalf("round trip failed:\noriginal: %q\nstripped: %q", content, got)
	}
}
