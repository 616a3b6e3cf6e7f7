package models

// Unit is a service point from the Helsinki service map open-data API.
type Unit struct {
	ID            int      `json:"id"`
	NameFi        string   `json:"name_fi"`
	NameSv        string   `json:"name_sv,omitempty"`
	NameEn        string   `json:"name_en,omitempty"`
	StreetAddress string   `json:"street_address_fi,omitempty"`
	PostalCode    string   `json:"address_zip,omitempty"`
	City          string   `json:"address_city_fi,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	WWW           string   `json:"www_fi,omitempty"`
}
