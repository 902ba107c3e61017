package dto

// Pagina is the paginated list envelope: total row count, links to the
// neighbouring pages (nil at the edges) and the page of results.
type Pagina struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

type Mensaje struct {
	Mensaje string `json:"mensaje"`
}
