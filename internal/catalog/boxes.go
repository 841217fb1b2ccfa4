package catalog

import "github.com/aaravmahajanofficial/grocery-storefront/internal/models"

// BoxPlaceholderImage is used for a custom box whose first product has no image.
const BoxPlaceholderImage = "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400"

var CustomBoxDescription = models.Localized{Ar: "صندوق مخصص من اختيارك", En: "Custom box of your choice"}

// DefaultCustomBoxName is used when a shopper adds an unnamed draft straight to the cart.
var DefaultCustomBoxName = models.Localized{Ar: "صندوق مخصص", En: "Custom Box"}

var readyBoxes = []models.Box{
	{
		ID:   "box-1",
		Name: models.Localized{Ar: "صندوق العيلة (خضار)", En: "Family Veg Box"},
		Description: models.Localized{
			Ar: "تشكيلة متنوعة من الخضار الطازجة تكفي العائلة لأسبوع",
			En: "A variety of fresh vegetables to last the family a week",
		},
		Contents: models.LocalizedList{
			Ar: []string{"2 كيلو بندورة", "2 كيلو خيار", "2 كيلو بطاطا", "1 كيلو بصل", "1 كيلو جزر", "1 كيلو كوسا", "1 باذنجان", "1 فلفل رومي", "1 ربطة بقدونس", "1 ربطة نعنع"},
			En: []string{"2 kg Tomatoes", "2 kg Cucumbers", "2 kg Potatoes", "1 kg Onions", "1 kg Carrots", "1 kg Zucchini", "1 Eggplant", "1 Bell Pepper", "1 bunch Parsley", "1 bunch Mint"},
		},
		Price:   money("12.00"),
		Image:   "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400",
		InStock: true,
	},
	{
		ID:   "box-2",
		Name: models.Localized{Ar: "صندوق الفواكه", En: "Fruit Box"},
		Description: models.Localized{
			Ar: "أشهى الفواكه الموسمية الطازجة",
			En: "Delicious seasonal fresh fruits",
		},
		Contents: models.LocalizedList{
			Ar: []string{"2 كيلو تفاح", "2 كيلو برتقال", "1 كيلو موز", "1 كيلو عنب", "500 غرام فراولة"},
			En: []string{"2 kg Apples", "2 kg Oranges", "1 kg Bananas", "1 kg Grapes", "500g Strawberries"},
		},
		Price:   money("14.00"),
		Image:   "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?w=400",
		InStock: true,
	},
	{
		ID:   "box-3",
		Name: models.Localized{Ar: "صندوق العصير", En: "Juice Box"},
		Description: models.Localized{
			Ar: "فواكه مثالية للعصائر الطازجة",
			En: "Perfect fruits for fresh juices",
		},
		Contents: models.LocalizedList{
			Ar: []string{"3 كيلو برتقال", "2 كيلو جزر", "1 كيلو تفاح أخضر", "1 كيلو شمندر", "2 ربطة نعنع"},
			En: []string{"3 kg Oranges", "2 kg Carrots", "1 kg Green Apples", "1 kg Beetroot", "2 bunches Mint"},
		},
		Price:   money("11.00"),
		Image:   "https://images.unsplash.com/photo-1622597467836-f3e7e50a0c4e?w=400",
		InStock: true,
	},
	{
		ID:   "box-4",
		Name: models.Localized{Ar: "صندوق السلطة", En: "Salad Box"},
		Description: models.Localized{
			Ar: "كل ما تحتاجه لسلطات طازجة ولذيذة",
			En: "Everything you need for fresh, delicious salads",
		},
		Contents: models.LocalizedList{
			Ar: []string{"2 خس", "1 كيلو بندورة", "1 كيلو خيار", "2 ربطة جرجير", "1 ربطة بقدونس", "1 ربطة نعنع", "1 ربطة بصل أخضر", "1 فلفل رومي"},
			En: []string{"2 Lettuce", "1 kg Tomatoes", "1 kg Cucumbers", "2 bunches Arugula", "1 bunch Parsley", "1 bunch Mint", "1 bunch Green Onions", "1 Bell Pepper"},
		},
		Price:   money("10.50"),
		Image:   "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400",
		InStock: true,
	},
}

func ReadyBoxes() []*models.Box {
	out := make([]*models.Box, 0, len(readyBoxes))
	for i := range readyBoxes {
		b := readyBoxes[i]
		out = append(out, &b)
	}

	return out
}

func FindReadyBox(id string) (*models.Box, bool) {
	for i := range readyBoxes {
		if readyBoxes[i].ID == id {
			b := readyBoxes[i]

			return &b, true
		}
	}

	return nil, false
}
