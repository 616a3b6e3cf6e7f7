package models

// BuildingRecord is one grouped product from the DataHub feed. Only the first
// element of each slice is used; any of them may be missing.
type BuildingRecord struct {
	ID                  string               `json:"id"`
	ProductInformations []ProductInformation `json:"productInformations"`
	PostalAddresses     []PostalAddress      `json:"postalAddresses"`
	ProductImages       []ProductImage       `json:"productImages"`
}

type ProductInformation struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

// PostalAddress holds the street address of a building. Location is a raw
// "(lat, lng)" string as delivered by the feed.
type PostalAddress struct {
	StreetName string `json:"streetName"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Location   string `json:"location"`
}

type ProductImage struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	AltText      string `json:"altText"`
	Copyright    string `json:"copyright"`
}

// FirstInformation returns the canonical product information, if any.
func (b BuildingRecord) FirstInformation() (ProductInformation, bool) {
	if len(b.ProductInformations) == 0 {
		return ProductInformation{}, false
	}
	return b.ProductInformations[0], true
}

// FirstAddress returns the primary postal address, if any.
func (b BuildingRecord) FirstAddress() (PostalAddress, bool) {
	if len(b.PostalAddresses) == 0 {
		return PostalAddress{}, false
	}
	return b.PostalAddresses[0], true
}

// FirstImage returns the thumbnail image, if any.
func (b BuildingRecord) FirstImage() (ProductImage, bool) {
	if len(b.ProductImages) == 0 {
		return ProductImage{}, false
	}
	return b.ProductImages[0], true
}

// GroupedProductsResponse is the DataHub response envelope.
type GroupedProductsResponse struct {
	Data struct {
		GroupedProducts []BuildingRecord `json:"groupedProducts"`
	} `json:"data"`
}

// BuildingCard is the flattened view of a building shown in list cards and popups.
type BuildingCard struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	ThumbnailURL string `json:"thumbnail_url"`
	AltText      string `json:"alt_text"`
}
