package shape

import "github.com/yourorg/nft-collection-dashboard/internal/model"

// RawSocial matches one row of the social metadata endpoint.
type RawSocial struct {
	Narrative string `json:"narrative"`
	Twitter   string `json:"twitter"`
	Discord   string `json:"discord"`
	Website   string `json:"website"`
}

// Social shapes the first social metadata row. Links may be empty; the
// narrative and link set pass through as-is.
func Social(rows []RawSocial) (model.Social, error) {
	if len(rows) == 0 {
		return model.Social{}, emptyErr("social")
	}
	r := rows[0]
	return model.Social{
		Narrative: r.Narrative,
		Twitter:   r.Twitter,
		Discord:   r.Discord,
		Website:   r.Website,
	}, nil
}
