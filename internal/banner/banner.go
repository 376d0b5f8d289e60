// Package banner holds the promotional banner record shared by the client,
// the admin form and the development backend.
package banner

type Banner struct {
	ID          *int64 `json:"id,omitempty"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Timer       int    `json:"timer"`
	IsVisible   bool   `json:"isVisible"`
}

// Patch is a partial Banner. Nil fields are left untouched by Merge.
type Patch struct {
	Description *string
	Link        *string
	Timer       *int
	IsVisible   *bool
}

func Merge(b Banner, p Patch) Banner {
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Link != nil {
		b.Link = *p.Link
	}
	if p.Timer != nil {
		b.Timer = *p.Timer
	}
	if p.IsVisible != nil {
		b.IsVisible = *p.IsVisible
	}
	return b
}

func PatchFromBanner(b Banner) Patch {
	return Patch{
		Description: &b.Description,
		Link:        &b.Link,
		Timer:       &b.Timer,
		IsVisible:   &b.IsVisible,
	}
}

func Hide() Patch {
	hidden := false
	return Patch{IsVisible: &hidden}
}

// Clone returns a deep copy so callers cannot alias the ID of canonical state.
func (b *Banner) Clone() *Banner {
	if b == nil {
		return nil
	}
	c := *b
	if b.ID != nil {
		id := *b.ID
		c.ID = &id
	}
	return &c
}
