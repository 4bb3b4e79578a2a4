package domain

type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	Avatar       Media  `json:"avatar"`
	Banner       Media  `json:"banner"`
	VenueManager bool   `json:"venueManager"`
}
