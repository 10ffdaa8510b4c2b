package nav

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		link string
		want Route
	}{
		{"", Route{Kind: KindComposition}},
		{"/", Route{Kind: KindComposition}},
		{"/?preview=true", Route{Kind: KindComposition, Preview: true}},
		{"/composition", Route{Kind: KindComposition}},
		{"/composition/about", Route{Kind: KindComposition, Path: []string{"about"}}},
		{"/composition/about/team/?preview=1", Route{Kind: KindComposition, Path: []string{"about", "team"}, Preview: true}},
		{"/composition?compositionId=abc", Route{Kind: KindComposition, CompositionID: "abc"}},
		{"/service-detail?id=aid&label=Financial+Aid", Route{Kind: KindServiceDetail, ServiceID: "aid", Label: "Financial Aid"}},
		{"/routes", Route{Kind: KindRoutes}},
		{"logs", Route{Kind: KindLogs}},
	}
	for _, tc := range cases {
		t.Run(tc.link, func(t *testing.T) {
			got, err := Parse(tc.link)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.link, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.link, diff)
			}
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, link := range []string{"/nowhere", "https://example.com/composition/a"} {
		if _, err := Parse(link); !errors.Is(err, ErrUnknownLink) {
			t.Fatalf("Parse(%q) error = %v, want ErrUnknownLink", link, err)
		}
	}
}

func TestLinkRoundTrip(t *testing.T) {
	routes := []Route{
		{Kind: KindComposition},
		{Kind: KindComposition, Path: []string{"about", "team"}, Preview: true},
		{Kind: KindComposition, CompositionID: "abc"},
		{Kind: KindServiceDetail, ServiceID: "aid", Label: "Financial Aid"},
		{Kind: KindRoutes},
		{Kind: KindLogs},
	}
	for _, r := range routes {
		got, err := Parse(r.Link())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", r.Link(), err)
		}
		if diff := cmp.Diff(r, got); diff != "" {
			t.Fatalf("round trip of %q mismatch (-want +got):\n%s", r.Link(), diff)
		}
	}
}

func TestCompositionLink(t *testing.T) {
	if got := CompositionLink(nil); got != "/composition" {
		t.Fatalf("CompositionLink(nil) = %q", got)
	}
	if got := CompositionLink([]string{"", "about", " "}); got != "/composition/about" {
		t.Fatalf("CompositionLink = %q, want /composition/about", got)
	}
}

func TestDisplayPath(t *testing.T) {
	if got := (Route{}).DisplayPath(); got != "/root" {
		t.Fatalf("DisplayPath = %q, want /root", got)
	}
	if got := (Route{Path: []string{"a", "b"}}).DisplayPath(); got != "/a/b" {
		t.Fatalf("DisplayPath = %q, want /a/b", got)
	}
}
