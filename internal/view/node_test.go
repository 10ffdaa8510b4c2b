package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoxDropsZeroNodes(t *testing.T) {
	n := Box("k", StyleHero,
		Text(KindHeading, "Title"),
		Text(KindText, ""),
		Node{},
		Button("Go", Action{Kind: ActionNavigate, Target: "/composition/about"}),
	)
	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if n.Children[0].Kind != KindHeading || n.Children[1].Kind != KindButton {
		t.Fatalf("children kinds = %v, %v", n.Children[0].Kind, n.Children[1].Kind)
	}

	empty := Box("", StyleDefault, Node{})
	if !empty.IsZero() {
		t.Fatalf("box with only zero children should be zero: %#v", empty)
	}
	if Box("keyed", StyleDefault).IsZero() {
		t.Fatalf("keyed box should not be zero")
	}
}

func TestActionsInDocumentOrder(t *testing.T) {
	tree := Box("root", StyleDefault,
		Row("header", StyleDefault,
			Text(KindHeading, "Brand"),
			Button("About", Action{Target: "/composition/about"}),
		),
		Box("hero", StyleHero,
			Button("Apply", Action{Kind: ActionOpenURL, Target: "https://example.com"}),
		),
		Notice("x", "Unknown component type: x"),
	)

	var labels []string
	for _, n := range Actions(tree) {
		labels = append(labels, n.Text)
	}
	if diff := cmp.Diff([]string{"About", "Apply"}, labels); diff != "" {
		t.Fatalf("Actions mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := Box("root", StyleDefault,
		Box("skip", StyleDefault, Text(KindText, "hidden")),
		Text(KindText, "shown"),
	)
	var texts []string
	Walk(tree, func(n Node) bool {
		if n.Text != "" {
			texts = append(texts, n.Text)
		}
		return n.Key != "skip"
	})
	if diff := cmp.Diff([]string{"shown"}, texts); diff != "" {
		t.Fatalf("Walk mismatch (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	if KindNotice.String() != "notice" || Kind(99).String() != "unknown" {
		t.Fatalf("Kind.String mapping wrong")
	}
}
