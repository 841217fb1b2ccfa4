package models

type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// ParseLanguage falls back to Arabic for anything it does not recognise.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEnglish {
		return LanguageEnglish
	}

	return LanguageArabic
}

func (l Language) Valid() bool {
	return l == LanguageArabic || l == LanguageEnglish
}

type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryHerbs      Category = "herbs"
	CategoryOrganic    Category = "organic"
	CategoryImported   Category = "imported"
)

var Categories = []Category{CategoryVegetables, CategoryFruits, CategoryHerbs, CategoryOrganic, CategoryImported}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitPiece    Unit = "piece"
	UnitBunch    Unit = "bunch"
	UnitGram250  Unit = "gram250"
	UnitGram500  Unit = "gram500"
	UnitBox      Unit = "box"
)

type Area string

const (
	AreaAbdali       Area = "areaAbdali"
	AreaJabalAmman   Area = "areaJabalAmman"
	AreaJabalHussein Area = "areaJabalHussein"
	AreaShmeisani    Area = "areaShmeisani"
	AreaSweifieh     Area = "areaSweifieh"
	AreaKhalda       Area = "areaKhalda"
	AreaDahiya       Area = "areaDahiya"
	AreaJubeiha      Area = "areaJubeiha"
	AreaTlaAli       Area = "areaTlaAli"
	AreaUmUthaina    Area = "areaUmUthaina"
	AreaMarka        Area = "areaMarka"
	AreaWehdat       Area = "areaWehdat"
	AreaHashmi       Area = "areaHashmi"
	AreaTabarbour    Area = "areaTabarbour"
	AreaSahab        Area = "areaSahab"
	AreaOther        Area = "areaOther"
)

var Areas = []Area{
	AreaAbdali, AreaJabalAmman, AreaJabalHussein, AreaShmeisani,
	AreaSweifieh, AreaKhalda, AreaDahiya, AreaJubeiha,
	AreaTlaAli, AreaUmUthaina, AreaMarka, AreaWehdat,
	AreaHashmi, AreaTabarbour, AreaSahab, AreaOther,
}

func (a Area) Valid() bool {
	for _, known := range Areas {
		if a == known {
			return true
		}
	}

	return false
}

type Slot string

const (
	SlotMorning Slot = "slot1"
	SlotEvening Slot = "slot2"
	SlotASAP    Slot = "asap"
)

var Slots = []Slot{SlotMorning, SlotEvening, SlotASAP}

func (s Slot) Valid() bool {
	return s == SlotMorning || s == SlotEvening || s == SlotASAP
}
