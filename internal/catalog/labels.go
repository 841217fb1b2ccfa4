package catalog

import "github.com/aaravmahajanofficial/grocery-storefront/internal/models"

var unitLabels = map[models.Unit]models.Localized{
	models.UnitKilogram: {Ar: "كيلو", En: "kg"},
	models.UnitPiece:    {Ar: "حبة", En: "pc"},
	models.UnitBunch:    {Ar: "ربطة", En: "bunch"},
	models.UnitGram250:  {Ar: "250 غرام", En: "250g"},
	models.UnitGram500:  {Ar: "500 غرام", En: "500g"},
	models.UnitBox:      {Ar: "صندوق", En: "box"},
}

// UnitLabel falls back to the raw unit code for units it does not know.
func UnitLabel(unit models.Unit, lang models.Language) string {
	if label, ok := unitLabels[unit]; ok {
		return label.In(lang)
	}

	return string(unit)
}

var areaLabels = map[models.Area]models.Localized{
	models.AreaAbdali:       {Ar: "العبدلي", En: "Abdali"},
	models.AreaJabalAmman:   {Ar: "جبل عمان", En: "Jabal Amman"},
	models.AreaJabalHussein: {Ar: "جبل الحسين", En: "Jabal Al-Hussein"},
	models.AreaShmeisani:    {Ar: "الشميساني", En: "Shmeisani"},
	models.AreaSweifieh:     {Ar: "الصويفية", En: "Sweifieh"},
	models.AreaKhalda:       {Ar: "خلدا", En: "Khalda"},
	models.AreaDahiya:       {Ar: "ضاحية الرشيد", En: "Dahiyat Al-Rasheed"},
	models.AreaJubeiha:      {Ar: "الجبيهة", En: "Jubeiha"},
	models.AreaTlaAli:       {Ar: "تلاع العلي", En: "Tla' Al-Ali"},
	models.AreaUmUthaina:    {Ar: "أم أذينة", En: "Um Uthaina"},
	models.AreaMarka:        {Ar: "ماركا", En: "Marka"},
	models.AreaWehdat:       {Ar: "الوحدات", En: "Wehdat"},
	models.AreaHashmi:       {Ar: "الهاشمي", En: "Hashmi"},
	models.AreaTabarbour:    {Ar: "طبربور", En: "Tabarbour"},
	models.AreaSahab:        {Ar: "سحاب", En: "Sahab"},
	models.AreaOther:        {Ar: "منطقة أخرى", En: "Other area"},
}

func AreaLabel(area models.Area, lang models.Language) string {
	if label, ok := areaLabels[area]; ok {
		return label.In(lang)
	}

	return string(area)
}

var slotLabels = map[models.Slot]models.Localized{
	models.SlotMorning: {Ar: "صباحاً (9 - 1)", En: "Morning (9 AM - 1 PM)"},
	models.SlotEvening: {Ar: "مساءً (4 - 8)", En: "Evening (4 PM - 8 PM)"},
	models.SlotASAP:    {Ar: "بأسرع وقت", En: "As soon as possible"},
}

func SlotLabel(slot models.Slot, lang models.Language) string {
	if label, ok := slotLabels[slot]; ok {
		return label.In(lang)
	}

	return ""
}

var currency = models.Localized{Ar: "د.أ", En: "JOD"}

func Currency(lang models.Language) string {
	return currency.In(lang)
}
