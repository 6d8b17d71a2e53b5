// Package goquery implements signal collection from rendered profile
// pages using CSS selectors.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
	"github.com/mstanek/scout"
)

// Ensure Collector implements the collection interfaces at compile time.
var (
	_ scout.SignalCollector = (*Collector)(nil)
	_ scout.ChannelReader   = (*Collector)(nil)
)

// regionConfig defines a CSS selector for a profile-specific UI region
// together with a source label.
type regionConfig struct {
	Selector string
	Source   string
}

// platformRegions are the profile-UI containers whose links are treated
// as higher-confidence signals. Evaluated in order; adding a region is
// a table edit.
var platformRegions = []regionConfig{
	{Selector: "#links-section a[href]", Source: "links-section"},
	{Selector: "#link-list-container a[href]", Source: "link-list"},
	{Selector: "yt-channel-external-link-view-model a[href]", Source: "external-link"},
	{Selector: ".channel-header-links a[href]", Source: "header"},
	{Selector: "[class*='channel-links'] a[href]", Source: "channel-links"},
}

// Collector builds PageSignals and channel metadata from rendered HTML.
type Collector struct{}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect parses rendered HTML into a PageSignal: visible text, anchor
// links in document order, platform-region links, raw structured-data
// blocks, and interactive-element captions.
func (c *Collector) Collect(html string) (*scout.PageSignal, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scout.Errorf(scout.EINVALID, "failed to parse HTML: %v", err)
	}

	sig := &scout.PageSignal{}

	body := doc.Find("body")
	if body.Length() > 0 {
		sig.Text = strings.TrimSpace(body.Text())
	} else {
		sig.Text = strings.TrimSpace(doc.Text())
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			sig.AnchorLinks = append(sig.AnchorLinks, href)
		}
	})

	for _, region := range platformRegions {
		doc.Find(region.Selector).Each(func(_ int, sel *goquery.Selection) {
			if href, ok := sel.Attr("href"); ok && href != "" {
				sig.PlatformLinks = append(sig.PlatformLinks, href)
			}
		})
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		block := strings.TrimSpace(sel.Text())
		if block == "" {
			return
		}
		sig.StructuredData = append(sig.StructuredData, repairBlock(block))
	})

	doc.Find("button, [role='button'], a[aria-label]").Each(func(_ int, sel *goquery.Selection) {
		caption := strings.TrimSpace(sel.Text())
		if caption == "" {
			caption = strings.TrimSpace(sel.AttrOr("aria-label", ""))
		}
		if caption != "" {
			sig.ButtonCaptions = append(sig.ButtonCaptions, caption)
		}
	})

	return sig, nil
}

// ReadChannel extracts channel metadata from rendered HTML. Missing
// fields are left empty; only unparseable HTML is an error.
func (c *Collector) ReadChannel(html string) (*scout.Channel, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scout.Errorf(scout.EINVALID, "failed to parse HTML: %v", err)
	}

	ch := &scout.Channel{
		Title:       metaContent(doc, `meta[property="og:title"]`),
		Description: metaContent(doc, `meta[property="og:description"]`),
		ChannelID:   metaContent(doc, `meta[itemprop="identifier"]`),
	}

	if ch.ChannelID == "" {
		// Fall back to the canonical channel URL.
		if canonical, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
			if idx := strings.LastIndex(canonical, "/channel/"); idx >= 0 {
				ch.ChannelID = strings.TrimSuffix(canonical[idx+len("/channel/"):], "/")
			}
		}
	}

	return ch, nil
}

// repairBlock attempts to repair a structured-data block that is not
// valid JSON. Irreparable blocks are returned as-is so the harvester
// can skip them without losing links from other blocks.
func repairBlock(block string) string {
	if json.Valid([]byte(block)) {
		return block
	}
	repaired, err := jsonrepair.JSONRepair(block)
	if err != nil {
		return block
	}
	return repaired
}

// metaContent returns the content attribute of the first element
// matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).AttrOr("content", ""))
}
