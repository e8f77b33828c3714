// internal/models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product is one catalog entry. IDs are stable slugs ("huila-colombia")
// rather than surrogate keys, so cart snapshots and quiz candidates can
// reference them across catalog edits.
type Product struct {
	ID                  string         `json:"id" gorm:"primaryKey;size:120"`
	Name                string         `json:"name" gorm:"size:255;not null"`
	Description         string         `json:"description" gorm:"type:text"`
	PriceNumber         int            `json:"price_number" gorm:"not null"`
	Prices              PriceMap       `json:"prices,omitempty" gorm:"type:jsonb"`
	Img                 string         `json:"img" gorm:"size:500"`
	IsNew               bool           `json:"is_new" gorm:"default:false"`
	Region              string         `json:"region,omitempty" gorm:"size:100"`
	RoastLevel          string         `json:"roast_level,omitempty" gorm:"size:50"`
	TastingNotes        pq.StringArray `json:"tasting_notes,omitempty" gorm:"type:text[]"`
	Acidity             *int           `json:"acidity,omitempty"`
	Intensity           *int           `json:"intensity,omitempty"`
	Bitterness          *int           `json:"bitterness,omitempty"`
	GrindOptions        pq.StringArray `json:"grind_options,omitempty" gorm:"type:text[]"`
	TastingProfileImage string         `json:"tasting_profile_image,omitempty" gorm:"size:500"`
	ArtInfo             *ArtInfo       `json:"art_info,omitempty" gorm:"type:jsonb"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`
}

// PriceFor returns the price for a weight variant, falling back to the base
// price when the catalog carries no per-weight entry. Prices win over
// PriceNumber when present; older catalog rows only have the flat price.
func (p *Product) PriceFor(weight string) int {
	if weight != "" && p.Prices != nil {
		if price, ok := p.Prices[weight]; ok {
			return price
		}
	}
	return p.PriceNumber
}

// PriceMap maps a weight-variant label ("250g", "1kg") to an integer CLP price.
type PriceMap map[string]int

func (m PriceMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *PriceMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("unsupported type for PriceMap")
	}

	return json.Unmarshal(bytes, m)
}

// ArtInfo is the display metadata for a product's illustration edition.
// Pure presentation data; the cart and quiz engines never look inside it.
type ArtInfo struct {
	Title             string         `json:"title,omitempty"`
	Description       string         `json:"description,omitempty"`
	ArtistName        string         `json:"artist_name,omitempty"`
	ArtistDescription string         `json:"artist_description,omitempty"`
	ArtistSocials     *ArtistSocials `json:"artist_socials,omitempty"`
	Illustration      string         `json:"illustration,omitempty"`
}

type ArtistSocials struct {
	Instagram string `json:"instagram,omitempty"`
	Web       string `json:"web,omitempty"`
}

func (a *ArtInfo) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *ArtInfo) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("unsupported type for ArtInfo")
	}

	return json.Unmarshal(bytes, a)
}
