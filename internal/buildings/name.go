package buildings

import (
	"strings"

	"buildings-api/internal/models"
)

// UnknownBuilding is the display name used when a record carries no usable name.
const UnknownBuilding = "Unknown Building"

const copyrightMarker = "Copyright:"

// curatedNames maps image copyright holders to the building they photograph,
// for records that arrive without product information.
var curatedNames = map[string]string{
	"Kuvio":               "Oodi",
	"Didrichsen archives": "Didrichsenin taidemuseo",
}

type nameRule func(models.BuildingRecord) string

var nameRules = []nameRule{
	informationName,
	curatedCopyrightName,
	markedCopyrightName,
	rawCopyright,
}

// DisplayName resolves the human-readable name of a building. The first rule
// producing a non-empty string wins; the result is never empty.
func DisplayName(b models.BuildingRecord) string {
	for _, rule := range nameRules {
		if name := rule(b); name != "" {
			return name
		}
	}
	return UnknownBuilding
}

func informationName(b models.BuildingRecord) string {
	info, _ := b.FirstInformation()
	return info.Name
}

func curatedCopyrightName(b models.BuildingRecord) string {
	img, _ := b.FirstImage()
	return curatedNames[img.Copyright]
}

// markedCopyrightName handles credits like "Copyright: Visit Finland". A
// marker with nothing after it resolves to the placeholder.
func markedCopyrightName(b models.BuildingRecord) string {
	img, _ := b.FirstImage()
	if !strings.Contains(img.Copyright, copyrightMarker) {
		return ""
	}
	_, after, _ := strings.Cut(img.Copyright, ":")
	if name := strings.TrimSpace(after); name != "" {
		return name
	}
	return UnknownBuilding
}

func rawCopyright(b models.BuildingRecord) string {
	img, _ := b.FirstImage()
	return img.Copyright
}

// Card flattens a record into the fields shown on a list card or popup.
func Card(b models.BuildingRecord) models.BuildingCard {
	addr, _ := b.FirstAddress()
	img, _ := b.FirstImage()
	return models.BuildingCard{
		ID:           b.ID,
		Name:         DisplayName(b),
		StreetName:   addr.StreetName,
		City:         addr.City,
		PostalCode:   addr.PostalCode,
		ThumbnailURL: img.ThumbnailURL,
		AltText:      img.AltText,
	}
}

// Cards maps Card over records.
func Cards(records []models.BuildingRecord) []models.BuildingCard {
	cards := make([]models.BuildingCard, len(records))
	for i, r := range records {
		cards[i] = Card(r)
	}
	return cards
}
