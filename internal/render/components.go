package render

import (
	"github.com/five82/uniterm/internal/view"
)

// Container renders the content slot of a page or container.
func Container(p Props) view.Node {
	return view.Box(p.Key(), view.StyleDefault, p.RenderSlot("content")...)
}

// Hero renders eyebrow, title, description, image and call to action. Parts
// without a value are left out.
func Hero(p Props) view.Node {
	children := []view.Node{
		view.Text(view.KindEyebrow, p.String("eyebrow", "")),
		view.Text(view.KindHeading, p.String("title", "")),
		view.Text(view.KindText, p.String("description", "")),
	}
	if image := p.Asset("image"); image != nil {
		children = append(children, view.Node{Kind: view.KindImage, Text: image.Title, Action: &view.Action{
			Kind:   view.ActionOpenURL,
			Target: image.URL,
		}})
	}
	if label := p.String("primaryCta", ""); label != "" {
		children = append(children, view.Node{
			Kind:   view.KindButton,
			Text:   label,
			Action: p.LinkAction(p.Link("primaryCtaLink")),
		})
	}
	return view.Box(p.Key(), view.StyleHero, children...)
}

// Header renders the brand name and an optional primary nav item. The nav
// item only appears when both its label and link are set.
func Header(p Props) view.Node {
	brand := view.Text(view.KindHeading, p.String("brandName", "Brand"))
	brand.Style = view.StyleBrand

	var navItem view.Node
	label := p.String("navPrimaryLabel", "")
	if link := p.Link("navPrimaryLink"); label != "" && link != nil {
		navItem = view.Node{
			Kind:   view.KindButton,
			Text:   label,
			Style:  view.StyleNav,
			Action: p.LinkAction(link),
		}
	}
	return view.Row(p.Key(), view.StyleDefault, brand, navItem)
}

// RichText renders the content parameter as markdown.
func RichText(p Props) view.Node {
	return view.Box(p.Key(), view.StyleDefault, view.Text(view.KindMarkdown, p.String("content", "")))
}

// Unknown is the fallback for types without a renderer.
func Unknown(p Props) view.Node {
	return view.Notice(p.Key(), "Unknown component type: "+p.Type())
}
