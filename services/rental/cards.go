package rental

import "boulderhub/models"

const (
	// Descriptions at or under this length get no expand control at all.
	descriptionExpandThreshold = 100

	placeholderImage = "/static/images/noimage.png"

	showMoreLabel = "Show more"
	showLessLabel = "Show less"
)

// ClickSource identifies which control inside a card originated a click.
// Clicks from nested controls must not reach the card's own toggle.
type ClickSource string

const (
	ClickCard           ClickSource = "card"
	ClickExpandControl  ClickSource = "show-more"
	ClickGalleryControl ClickSource = "gallery"
)

// BuildCard projects one crashpad onto the card view model.
func BuildCard(pad models.Crashpad, selected bool) models.Card {
	card := models.Card{
		CrashpadID:      pad.ID,
		Title:           pad.Name,
		ImageURL:        pad.Image,
		Description:     pad.Description,
		Selected:        selected,
		DayRate:         pad.DayRate,
		SevenDayRate:    pad.SevenDayRate,
		FourteenDayRate: pad.FourteenDayRate,
	}
	if card.ImageURL == "" {
		card.ImageURL = placeholderImage
	}
	if len(pad.Description) > descriptionExpandThreshold {
		card.ShowExpand = true
		card.ExpandLabel = showMoreLabel
	}
	return card
}

// BuildCards projects a whole result set, carrying selection state over.
func BuildCards(pads []models.Crashpad, sel Selection) []models.Card {
	cards := make([]models.Card, 0, len(pads))
	for _, pad := range pads {
		cards = append(cards, BuildCard(pad, sel.Has(pad.ID)))
	}
	return cards
}

// toggleDescription flips a card between truncated and full display and
// relabels its control. Cards without an expand control ignore it.
func toggleDescription(card *models.Card) {
	if !card.ShowExpand {
		return
	}
	card.Expanded = !card.Expanded
	if card.Expanded {
		card.ExpandLabel = showLessLabel
	} else {
		card.ExpandLabel = showMoreLabel
	}
}
