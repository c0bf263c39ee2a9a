package rental

import (
	"strings"
	"testing"

	"boulderhub/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildCardShortDescription(t *testing.T) {
	pad := models.Crashpad{
		ID:          1,
		Name:        "Mondo",
		Image:       "/media/mondo.jpg",
		Description: strings.Repeat("a", 100),
	}

	card := BuildCard(pad, false)
	assert.False(t, card.ShowExpand, "exactly 100 chars gets no expand control")
	assert.Empty(t, card.ExpandLabel)
	assert.Equal(t, "/media/mondo.jpg", card.ImageURL)
}

func TestBuildCardLongDescription(t *testing.T) {
	pad := models.Crashpad{
		ID:          1,
		Name:        "Mondo",
		Description: strings.Repeat("a", 101),
	}

	card := BuildCard(pad, true)
	assert.True(t, card.ShowExpand)
	assert.False(t, card.Expanded)
	assert.Equal(t, "Show more", card.ExpandLabel)
	assert.True(t, card.Selected)
}

func TestBuildCardPlaceholderImage(t *testing.T) {
	card := BuildCard(models.Crashpad{ID: 1, Name: "Drifter"}, false)
	assert.Equal(t, "/static/images/noimage.png", card.ImageURL)
}

func TestBuildCardsCarriesSelection(t *testing.T) {
	pads := []models.Crashpad{{ID: 1}, {ID: 2}, {ID: 3}}
	cards := BuildCards(pads, SelectionFromIDs([]int64{2}))

	assert.Len(t, cards, 3)
	assert.False(t, cards[0].Selected)
	assert.True(t, cards[1].Selected)
	assert.False(t, cards[2].Selected)
}

func TestToggleDescription(t *testing.T) {
	card := BuildCard(models.Crashpad{ID: 1, Description: strings.Repeat("x", 200)}, false)

	toggleDescription(&card)
	assert.True(t, card.Expanded)
	assert.Equal(t, "Show less", card.ExpandLabel)

	toggleDescription(&card)
	assert.False(t, card.Expanded)
	assert.Equal(t, "Show more", card.ExpandLabel)
}

func TestToggleDescriptionNoControl(t *testing.T) {
	card := BuildCard(models.Crashpad{ID: 1, Description: "short"}, false)
	toggleDescription(&card)
	assert.False(t, card.Expanded)
	assert.Empty(t, card.ExpandLabel)
}
