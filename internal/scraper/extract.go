package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lllinda/nps-explorer/internal/site"
)

// lookupText resolves a selection to its trimmed text. Not found when the
// selection is empty or the text trims to "" — the two cases are treated
// identically.
func lookupText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	text := strings.TrimSpace(sel.First().Text())
	if text == "" {
		return "", false
	}
	return text, true
}

// orPlaceholder applies a field's named fallback.
func orPlaceholder(value string, found bool, placeholder string) string {
	if !found {
		return placeholder
	}
	return value
}

// extractDetail pulls the labeled fields off one detail page. Each field is
// an independent best-effort lookup; nothing here returns an error.
func extractDetail(doc *goquery.Document, detailURL string) site.Site {
	name, _ := lookupText(doc.Find("div.Hero-titleContainer a.Hero-title"))

	category, foundCategory := lookupText(
		doc.Find("div.Hero-designationContainer span.Hero-designation"))

	footer := doc.Find("div.ParkFooter")

	zipcode, foundZip := lookupText(footer.Find("p.adr span.postal-code"))

	// Address needs both halves; either one missing drops the whole field.
	locality, foundLocality := lookupText(footer.Find("p.adr span[itemprop=addressLocality]"))
	region, foundRegion := lookupText(footer.Find("p.adr span[itemprop=addressRegion]"))
	address := ""
	foundAddress := foundLocality && foundRegion
	if foundAddress {
		address = locality + ", " + region
	}

	phone, foundPhone := lookupText(footer.Find("span.tel"))

	return site.Site{
		Name:     name,
		Category: orPlaceholder(category, foundCategory, site.PlaceholderCategory),
		Address:  orPlaceholder(address, foundAddress, site.PlaceholderAddress),
		Zipcode:  orPlaceholder(zipcode, foundZip, site.PlaceholderZipcode),
		Phone:    orPlaceholder(phone, foundPhone, site.PlaceholderPhone),
		URL:      detailURL,
	}
}
