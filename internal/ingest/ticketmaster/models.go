package ticketmaster

// discoveryResponse is the slice of the Discovery API payload we
// consume. The interesting fields sit several levels down in
// _embedded blocks.
type discoveryResponse struct {
	Embedded struct {
		Events []discoveryEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size         int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages   int `json:"totalPages"`
		Number       int `json:"number"`
	} `json:"page"`
}

type discoveryEvent struct {
	Name  string `json:"name"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
		} `json:"venues"`
	} `json:"_embedded"`
}
