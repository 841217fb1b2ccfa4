package boxes

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/google/uuid"
)

var (
	ErrEmptySelection = errors.New("a box needs at least one product")
	ErrBlankName      = errors.New("a box needs a name")
)

// Collection is a shopper's saved custom boxes, in creation order.
type Collection struct {
	boxes []models.Box
}

func NewCollection(boxes ...models.Box) *Collection {
	return &Collection{boxes: boxes}
}

func (c *Collection) index(id string) int {
	for i := range c.boxes {
		if c.boxes[i].ID == id {
			return i
		}
	}

	return -1
}

// Save materialises a selection into a custom box. When existingID names a
// saved box it is replaced in place and keeps its creation time; otherwise the
// box is appended under a new id.
func (c *Collection) Save(name string, selection []models.BoxSelection, existingID string, now time.Time) (*models.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}

	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	image := selection[0].Product.Image
	if image == "" {
		image = catalog.BoxPlaceholderImage
	}

	box := models.Box{
		Name:        models.Localized{Ar: name, En: name},
		Description: catalog.CustomBoxDescription,
		Contents: models.LocalizedList{
			Ar: ContentLines(selection, models.LanguageArabic),
			En: ContentLines(selection, models.LanguageEnglish),
		},
		Price:     Total(selection),
		Image:     image,
		InStock:   true,
		IsCustom:  true,
		Selection: append([]models.BoxSelection(nil), selection...),
	}

	if i := c.index(existingID); existingID != "" && i >= 0 {
		box.ID = existingID
		box.CreatedAt = c.boxes[i].CreatedAt
		if box.CreatedAt == nil {
			box.CreatedAt = &now
		}

		c.boxes[i] = box

		return &box, nil
	}

	box.ID = "custom-" + uuid.NewString()
	box.CreatedAt = &now
	c.boxes = append(c.boxes, box)

	return &box, nil
}

func (c *Collection) Delete(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}

	c.boxes = append(c.boxes[:i], c.boxes[i+1:]...)

	return true
}

func (c *Collection) Get(id string) (*models.Box, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}

	box := c.boxes[i]

	return &box, true
}

func (c *Collection) List() []models.Box {
	out := make([]models.Box, len(c.boxes))
	copy(out, c.boxes)

	return out
}

func (c *Collection) Len() int {
	return len(c.boxes)
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	if c.boxes == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(c.boxes)
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	var boxes []models.Box
	if err := json.Unmarshal(data, &boxes); err != nil {
		return err
	}

	c.boxes = boxes

	return nil
}

// DecodeCollection yields an empty collection for a missing or unreadable snapshot.
func DecodeCollection(data []byte) (*Collection, error) {
	c := &Collection{}
	if len(data) == 0 {
		return c, nil
	}

	if err := json.Unmarshal(data, c); err != nil {
		return &Collection{}, err
	}

	return c, nil
}
