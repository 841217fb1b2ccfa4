package catalog

import (
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)

	return &d
}

// staticProducts is the catalog bundled with the binary. It is served when the
// product store is empty or unreachable, and it is what Seed inserts.
var staticProducts = []models.Product{
	{ID: "veg-yellow-bell-pepper", Name: models.Localized{Ar: "فليفلة صفراء", En: "Yellow Bell Pepper"}, Category: models.CategoryVegetables, Price: money("1.15"), Unit: models.UnitKilogram, Image: "https://greenbasketstore.com/wp-content/uploads/2022/03/1.png", InStock: true},
	{ID: "veg-red-bell-pepper", Name: models.Localized{Ar: "فليفلة حمراء", En: "Red Bell Pepper"}, Category: models.CategoryVegetables, Price: money("1.15"), Unit: models.UnitKilogram, Image: "https://damaskmart.com/cdn/shop/products/PHOTO-2021-05-22-17-52-552_1200x1200.jpg?v=1621884757", InStock: true},
	{ID: "veg-green-bell-pepper", Name: models.Localized{Ar: "فليفلة خضراء", En: "Green Bell Pepper"}, Category: models.CategoryVegetables, Price: money("0.75"), Unit: models.UnitKilogram, Image: "https://palmyraorders.com/cdn/shop/files/capsicum-green-500g.jpg?v=1755770192&width=1000", InStock: true},
	{ID: "veg-orange-bell-pepper", Name: models.Localized{Ar: "فليفلة برتقالية", En: "Orange Bell Pepper"}, Category: models.CategoryVegetables, Price: money("1.15"), Unit: models.UnitKilogram, Image: "https://cdn.mafrservices.com/sys-master-root/hc5/h94/14379755831326/78432_main.jpg", InStock: true},
	{ID: "veg-hot-pepper", Name: models.Localized{Ar: "فلفل حار", En: "Hot Pepper"}, Category: models.CategoryVegetables, Price: money("1.00"), Unit: models.UnitKilogram, Image: "https://media.zid.store/3dfac062-0e10-4b87-af14-41b816f1152c/a4cd7c80-e347-49a3-93ec-cc91c5e8f79c.jpg", InStock: true},
	{ID: "veg-yellow-lemon", Name: models.Localized{Ar: "ليمون أصفر", En: "Yellow Lemon"}, Category: models.CategoryVegetables, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1590502593747-42a996133562?w=400&h=400&fit=crop", InStock: true},
	{ID: "veg-tomatoes", Name: models.Localized{Ar: "بندورة", En: "Tomatoes"}, Category: models.CategoryVegetables, Price: money("0.50"), Unit: models.UnitKilogram, Image: "https://almozon-jo.com/wp-content/uploads/2024/12/%D8%A8%D9%86%D8%AF%D9%88%D8%B1%D8%A9.png", InStock: true, IsBestSeller: true},
	{ID: "veg-zucchini", Name: models.Localized{Ar: "كوسا", En: "Zucchini"}, Category: models.CategoryVegetables, Price: money("0.90"), Unit: models.UnitKilogram, Image: "https://www.vegetables.bayer.com/content/dam/bayer-vegetables/product-photography/squash/Seminis_Squash_Anita_ES_01.jpg", InStock: true},
	{ID: "veg-classic-eggplant", Name: models.Localized{Ar: "باذنجان كلاسيك", En: "Classic Eggplant"}, Category: models.CategoryVegetables, Price: money("0.90"), Unit: models.UnitKilogram, Image: "https://yanboot.com/shop/image/cache/catalog/Vegetables/Organic%20Eggplants-500x500.jpg", InStock: true},
	{ID: "veg-cauliflower", Name: models.Localized{Ar: "زهرة", En: "Cauliflower"}, Category: models.CategoryVegetables, Price: money("0.75"), Unit: models.UnitPiece, Image: "https://media.zid.store/426a510a-a3da-4c3e-a9cb-133f5c23c457/6ccefe55-369d-40a7-8ed4-641843812c21.jpeg", InStock: true},
	{ID: "veg-potatoes", Name: models.Localized{Ar: "بطاطا", En: "Potatoes"}, Category: models.CategoryVegetables, Price: money("0.67"), Unit: models.UnitKilogram, Image: "https://bf1af2.akinoncloudcdn.com/products/2024/09/20/60250/fd037430-c8fc-4be8-a4b1-d3c12225785f.jpg", InStock: true, IsBestSeller: true},
	{ID: "veg-cucumbers", Name: models.Localized{Ar: "خيار", En: "Cucumbers"}, Category: models.CategoryVegetables, Price: money("0.65"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1449300079323-02e209d9d3a6?w=400&h=400&fit=crop", InStock: true, IsBestSeller: true},
	{ID: "veg-white-onion", Name: models.Localized{Ar: "بصل أبيض", En: "White Onion"}, Category: models.CategoryVegetables, Price: money("0.50"), Unit: models.UnitKilogram, Image: "https://cdn.mafrservices.com/sys-master-root/ha3/hbd/49111617929246/33218_main.jpg?im=Resize=376", InStock: true},
	{ID: "veg-garlic-bunch", Name: models.Localized{Ar: "ربطة ثوم", En: "Garlic Bunch"}, Category: models.CategoryVegetables, Price: money("0.75"), Unit: models.UnitBunch, Image: "https://images.b3na.com/Upload/ImageProduct%2F68135%2F1717184357.webp", InStock: true},
	{ID: "veg-slim-eggplant", Name: models.Localized{Ar: "باذنجان رفيع", En: "Slim Eggplant"}, Category: models.CategoryVegetables, Price: money("0.75"), Unit: models.UnitKilogram, Image: "https://images.b3na.com/Upload/ImageProduct%2F68135%2F1717182855.webp?alt=media", InStock: true},
	{ID: "fruit-morridi-juice-oranges", Name: models.Localized{Ar: "برتقال عصير موردي", En: "Morridi Juice Oranges"}, Category: models.CategoryFruits, Price: money("0.65"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1547514701-42782101795e?w=400&h=400&fit=crop", InStock: true, IsBestSeller: true},
	{ID: "fruit-french-juice-oranges", Name: models.Localized{Ar: "برتقال عصير فرنساوي", En: "French Juice Oranges"}, Category: models.CategoryFruits, Price: money("0.65"), Unit: models.UnitKilogram, Image: "https://emdadx.com/wp-content/uploads/2023/09/Orange-Valencia-1-Kg.jpg", InStock: true},
	{ID: "fruit-grapefruit", Name: models.Localized{Ar: "برتقال جريفوت", En: "Grapefruit"}, Category: models.CategoryFruits, Price: money("0.60"), Unit: models.UnitKilogram, Image: "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d0/Citrus_paradisi_%28Grapefruit%2C_pink%29_white_bg.jpg/330px-Citrus_paradisi_%28Grapefruit%2C_pink%29_white_bg.jpg", InStock: true},
	{ID: "fruit-kiwi", Name: models.Localized{Ar: "كيوي", En: "Kiwi"}, Category: models.CategoryFruits, Price: money("3.50"), Unit: models.UnitKilogram, Image: "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b8/Kiwi_%28Actinidia_chinensis%29_1_Luc_Viatour.jpg/1280px-Kiwi_%28Actinidia_chinensis%29_1_Luc_Viatour.jpg", InStock: true},
	{ID: "fruit-pears", Name: models.Localized{Ar: "انجاص", En: "Pears"}, Category: models.CategoryFruits, Price: money("2.50"), Unit: models.UnitKilogram, Image: "https://storage.googleapis.com/download/storage/v1/b/biddimarket-assets/o/1550020-1550020-ai-optimized.png?generation=1768328910992609&alt=media", InStock: true},
	{ID: "fruit-spanish-persimmon", Name: models.Localized{Ar: "كاكا اسباني", En: "Spanish Persimmon"}, Category: models.CategoryFruits, Price: money("4.00"), Unit: models.UnitKilogram, Image: "https://palmyraorders.com/cdn/shop/files/persimmon-kaki-fruit-spain-500g-uae.jpg?v=1756035187&width=1214", InStock: true},
	{ID: "fruit-guava", Name: models.Localized{Ar: "جوافة", En: "Guava"}, Category: models.CategoryFruits, Price: money("2.50"), Unit: models.UnitKilogram, Image: "https://cdn.mafrservices.com/sys-master-root/hef/h8c/12838553813022/446902_main.jpg", InStock: true},
	{ID: "fruit-pomelo", Name: models.Localized{Ar: "بوملي", En: "Pomelo"}, Category: models.CategoryFruits, Price: money("1.00"), Unit: models.UnitPiece, Image: "https://palmyraorders.com/cdn/shop/files/green-pomelo-china-1-pc.jpg?v=1756619890&width=1000", InStock: true},
	{ID: "fruit-zebdani-apples", Name: models.Localized{Ar: "تفاح زبداني", En: "Zebdani Apples"}, Category: models.CategoryFruits, Price: money("1.75"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?w=400&h=400&fit=crop", InStock: true},
	{ID: "fruit-red-apples", Name: models.Localized{Ar: "تفاح أحمر", En: "Red Apples"}, Category: models.CategoryFruits, Price: money("1.75"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=400&fit=crop", InStock: true, IsBestSeller: true},
	{ID: "fruit-green-apples", Name: models.Localized{Ar: "تفاح أخضر", En: "Green Apples"}, Category: models.CategoryFruits, Price: money("1.75"), Unit: models.UnitKilogram, Image: "https://cdn.salla.sa/XPpjy/KTaDrDmYrNhK17JGTm385rjtVIf6hPTSo0naPeAV.jpg", InStock: true},
	{ID: "fruit-yellow-apples", Name: models.Localized{Ar: "تفاح أصفر", En: "Yellow Apples"}, Category: models.CategoryFruits, Price: money("1.75"), Unit: models.UnitKilogram, Image: "https://bazar-center.com/246007-large_default/%D8%AA%D9%81%D8%A7%D8%AD_%D8%A7%D8%B5%D9%81%D8%B1_%D9%88%D8%B2%D9%86.jpg", InStock: true},
	{ID: "fruit-kiwi-2", Name: models.Localized{Ar: "كيوي", En: "Kiwi"}, Category: models.CategoryFruits, Price: money("3.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1585059895524-72359e06133a?w=400&h=400&fit=crop", InStock: true},
	{ID: "fruit-halwani-grapes", Name: models.Localized{Ar: "عنب حلواني", En: "Halwani Grapes"}, Category: models.CategoryFruits, Price: money("2.50"), Unit: models.UnitKilogram, Image: "https://jebnalak.com/cdn/shop/files/Jebnalak-2024-10-19T200353.749_1024x1024.png?v=1729357445", InStock: true},
	{ID: "fruit-green-grapes", Name: models.Localized{Ar: "عنب أخضر", En: "Green Grapes"}, Category: models.CategoryFruits, Price: money("2.50"), Unit: models.UnitKilogram, Image: "https://cdn.salla.sa/AzeKdY/86f3d98f-f701-4eb7-9c04-f11dd497f9c7-1000x800.33840947547-kPl0KdJoDUtJ8Whwt3OOply1FfRqITpPlvB7FTpZ.png", InStock: true},
	{ID: "fruit-shamouti-oranges", Name: models.Localized{Ar: "برتقال شموطي", En: "Shamouti Oranges"}, Category: models.CategoryFruits, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?w=400&h=400&fit=crop", InStock: true},
	{ID: "fruit-navel-oranges", Name: models.Localized{Ar: "برتقال ابوصرة", En: "Navel Oranges"}, Category: models.CategoryFruits, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://cdn.salla.sa/oBEzY/Otdw7fQtTYGoEJjsVdjgQmXITHgbkn0q8do79fl2.jpg", InStock: true},
	{ID: "fruit-mandalina", Name: models.Localized{Ar: "مندلينا", En: "Mandalina"}, Category: models.CategoryFruits, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://upload.wikimedia.org/wikipedia/commons/a/a5/Satsuma_mandarin-cutout.jpg", InStock: true},
	{ID: "fruit-cherry-tomatoes", Name: models.Localized{Ar: "بندورة شيري", En: "Cherry Tomatoes"}, Category: models.CategoryFruits, Price: money("0.50"), Unit: models.UnitBox, Image: "https://cdn.salla.sa/oqYdG/yfmAYwyZWqldYLaqktYghSRJZTY2vOin82YbqkvS.png", InStock: true},
	{ID: "fruit-strawberries", Name: models.Localized{Ar: "فراولة", En: "Strawberries"}, Category: models.CategoryFruits, Price: money("3.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400&h=400&fit=crop", InStock: true, IsBestSeller: true},
	{ID: "fruit-ginger", Name: models.Localized{Ar: "زنجبيل", En: "Ginger"}, Category: models.CategoryFruits, Price: money("1.00"), Unit: models.UnitGram250, Image: "https://static.webteb.net/images/content/tbl_articles_article_27928_941a6a0c633-c9e4-49d5-90f7-a04a04f5b90c.jpg", InStock: true},
	{ID: "fruit-coconut", Name: models.Localized{Ar: "جوز هند", En: "Coconut"}, Category: models.CategoryFruits, Price: money("2.50"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1580984969071-a8da8c33b667?w=400&h=400&fit=crop", InStock: true},
	{ID: "herb-mint", Name: models.Localized{Ar: "نعنع", En: "Mint"}, Category: models.CategoryHerbs, Price: money("0.15"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1588908933351-eeb8cd4c4521?w=500&auto=format&fit=crop&q=60", InStock: true, IsBestSeller: true},
	{ID: "herb-parsley", Name: models.Localized{Ar: "بقدونس", En: "Parsley"}, Category: models.CategoryHerbs, Price: money("0.15"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1590759485418-90509afec818?w=500&auto=format&fit=crop&q=60", InStock: true, IsBestSeller: true},
	{ID: "herb-arugula", Name: models.Localized{Ar: "جرجير", En: "Arugula"}, Category: models.CategoryHerbs, Price: money("0.15"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1603496987335-2cb9e257215d?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-radish", Name: models.Localized{Ar: "فجل", En: "Radish"}, Category: models.CategoryHerbs, Price: money("0.50"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1593026122758-19bebc625104?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-thyme", Name: models.Localized{Ar: "زعتر", En: "Thyme"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://plus.unsplash.com/premium_photo-1726138617688-e6bfd9f0de5c?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-cilantro", Name: models.Localized{Ar: "كزبرة", En: "Cilantro"}, Category: models.CategoryHerbs, Price: money("0.15"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1535189487909-a262ad10c165?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-dill", Name: models.Localized{Ar: "شبت", En: "Dill"}, Category: models.CategoryHerbs, Price: money("0.25"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1509210459313-17feefdff5cd?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-leek", Name: models.Localized{Ar: "كرات", En: "Leek"}, Category: models.CategoryHerbs, Price: money("0.25"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1549913468-0ddc24a4a1bf?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-garden-cress", Name: models.Localized{Ar: "رشاد", En: "Garden Cress"}, Category: models.CategoryHerbs, Price: money("0.25"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1500420416454-4c0a15d2bf2a?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-howarni-greens", Name: models.Localized{Ar: "حوارنة", En: "Howarni Greens"}, Category: models.CategoryHerbs, Price: money("0.50"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400&h=400&fit=crop", InStock: true},
	{ID: "herb-chicory", Name: models.Localized{Ar: "هندبة", En: "Chicory"}, Category: models.CategoryHerbs, Price: money("0.33"), Unit: models.UnitBunch, Image: "https://media.istockphoto.com/id/496615056/photo/fresh-endive.webp?a=1&b=1&s=612x612&w=0&k=20&c=5GqcH-2xsQ7pergyGRZIeRNxBPu3d__Yd1lXGxqrfD8=", InStock: true},
	{ID: "herb-local-grape-leaves", Name: models.Localized{Ar: "ورق عنب بلدي", En: "Local Grape Leaves"}, Category: models.CategoryHerbs, Price: money("4.50"), Unit: models.UnitKilogram, Image: "https://specialtyproduce.com/sppics/627.png", InStock: true},
	{ID: "herb-khobeizeh", Name: models.Localized{Ar: "خبيزة", En: "Khobeizeh"}, Category: models.CategoryHerbs, Price: money("0.50"), Unit: models.UnitBunch, Image: "https://thumbs.dreamstime.com/b/wild-cheeseweed-mallow-malva-sylvestris-leaves-plant-152397911.jpg", InStock: true},
	{ID: "herb-celery", Name: models.Localized{Ar: "كرفس", En: "Celery"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1742805286467-305b3529c00a?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-red-carrots", Name: models.Localized{Ar: "جزر أحمر", En: "Red Carrots"}, Category: models.CategoryHerbs, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://media.istockphoto.com/id/155371952/photo/purple-dragon-carrots-on-white-background.jpg?s=612x612&w=0&k=20&c=yJNMH2BnB6I8rJTuS0ZXe11iEHnHyDMiHjgKmVaM9_Q=", InStock: true},
	{ID: "herb-tongue-leaves", Name: models.Localized{Ar: "ورق لسان", En: "Tongue Leaves"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQCSU9kEDXhqvMRFRqAFQBdh9nF80ioOusgKg&s", InStock: true},
	{ID: "herb-turnip", Name: models.Localized{Ar: "لفت", En: "Turnip"}, Category: models.CategoryHerbs, Price: money("0.50"), Unit: models.UnitBunch, Image: "https://media.istockphoto.com/id/137594783/photo/whole-purple-headed-turnips.webp?a=1&b=1&s=612x612&w=0&k=20&c=0VErt4RyVua56Zt8Lm6K4Uvp_Sw5UmKo8Mh41EncWd8=", InStock: true},
	{ID: "herb-taro", Name: models.Localized{Ar: "قلقاس", En: "Taro"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTSVb-Z8CJVQ6dZfMfSCV07hlhzUHC6dc_DXlmFUMDFl6bIAXZTGTOzpxHmyBlmhO66JfvNCozrh8sb6Ed1LEhxRBXoohxCPfpBVNFuMvuD&s=10", InStock: true},
	{ID: "herb-red-cabbage", Name: models.Localized{Ar: "ملفوف أحمر", En: "Red Cabbage"}, Category: models.CategoryHerbs, Price: money("0.50"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1508515366614-44664045eb3a?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-broccoli", Name: models.Localized{Ar: "بروكلي", En: "Broccoli"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1685504445355-0e7bdf90d415?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-iceberg-lettuce", Name: models.Localized{Ar: "خس ايسبرغ", En: "Iceberg Lettuce"}, Category: models.CategoryHerbs, Price: money("0.50"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1640958904159-51ae08bd3412?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-local-lettuce", Name: models.Localized{Ar: "خس بلدي", En: "Local Lettuce"}, Category: models.CategoryHerbs, Price: money("0.33"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1687199128888-ae7cbdfd6098?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-sage", Name: models.Localized{Ar: "ميرامية", En: "Sage"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1633933329875-044a32f4837f?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-green-onions", Name: models.Localized{Ar: "بصل أخضر", En: "Green Onions"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1602769515559-e15133a7e992?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-slim-eggplant", Name: models.Localized{Ar: "بتنجان رفيع", En: "Slim Eggplant"}, Category: models.CategoryHerbs, Price: money("0.75"), Unit: models.UnitKilogram, Image: "https://plus.unsplash.com/premium_photo-1737073968620-ea97cfc1c3b9?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-green-beans", Name: models.Localized{Ar: "فاصولية", En: "Green Beans"}, Category: models.CategoryHerbs, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1567375698348-5d9d5ae99de0?w=400&h=400&fit=crop", InStock: true},
	{ID: "herb-baby-cucumbers", Name: models.Localized{Ar: "خيار بيبي", En: "Baby Cucumbers"}, Category: models.CategoryHerbs, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1604977042946-1eecc30f269e?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-beetroot", Name: models.Localized{Ar: "شمندر", En: "Beetroot"}, Category: models.CategoryHerbs, Price: money("0.75"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1593105544559-ecb03bf76f82?w=400&h=400&fit=crop", InStock: true},
	{ID: "herb-red-hot-pepper", Name: models.Localized{Ar: "فلفل أحمر حار", En: "Red Hot Pepper"}, Category: models.CategoryHerbs, Price: money("0.75"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1583119022894-919a68a3d0e3?w=400&h=400&fit=crop", InStock: true},
	{ID: "herb-broad-beans", Name: models.Localized{Ar: "فاصولية عريضة", En: "Broad Beans"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1715941873135-217c6f7c7f42?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-black-eyed-peas", Name: models.Localized{Ar: "لوبية", En: "Black-eyed Peas"}, Category: models.CategoryHerbs, Price: money("1.30"), Unit: models.UnitKilogram, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRM9qLRzVVfedV5CNTijJxzrcM1UuZcYHdD1HnWTTiyDMJxc4T0lbNi7KgJdWyPRU7lhvq-yoV3xPoKPJ4XAFej3LhZ8wYzC4jdWDYoyVnWVw&s=10", InStock: true},
	{ID: "herb-cabbage", Name: models.Localized{Ar: "ملفوف", En: "Cabbage"}, Category: models.CategoryHerbs, Price: money("1.00"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1594282486552-05b4d80fbb9f?w=400&h=400&fit=crop", InStock: true},
	{ID: "herb-chamomile", Name: models.Localized{Ar: "بابونج", En: "Chamomile"}, Category: models.CategoryHerbs, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1596343621063-c7a7aaf37aa6?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-basil", Name: models.Localized{Ar: "ريحان", En: "Basil"}, Category: models.CategoryHerbs, Price: money("1.00"), Unit: models.UnitBox, Image: "https://plus.unsplash.com/premium_photo-1725899523683-838307ab1552?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "herb-fennel", Name: models.Localized{Ar: "شومر", En: "Fennel"}, Category: models.CategoryHerbs, Price: money("0.20"), Unit: models.UnitBunch, Image: "https://images.unsplash.com/photo-1701189975806-97b11541ec82?w=500&auto=format&fit=crop&q=60", InStock: true},
	{ID: "organic-tomatoes", Name: models.Localized{Ar: "بندورة عضوية", En: "Organic Tomatoes"}, Category: models.CategoryOrganic, Price: money("1.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400&h=400&fit=crop", InStock: true},
	{ID: "organic-lettuce", Name: models.Localized{Ar: "خس عضوي", En: "Organic Lettuce"}, Category: models.CategoryOrganic, Price: money("0.80"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1556801712-76c8eb07c2b0?w=400&h=400&fit=crop", InStock: true},
	{ID: "organic-carrots", Name: models.Localized{Ar: "جزر عضوي", En: "Organic Carrots"}, Category: models.CategoryOrganic, Price: money("1.20"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1582515073490-39981397c445?w=400&h=400&fit=crop", InStock: true},
	{ID: "organic-cucumbers", Name: models.Localized{Ar: "خيار عضوي", En: "Organic Cucumbers"}, Category: models.CategoryOrganic, Price: money("1.25"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1604977042946-1eecc30f269e?w=400&h=400&fit=crop", InStock: true},
	{ID: "organic-apples", Name: models.Localized{Ar: "تفاح عضوي", En: "Organic Apples"}, Category: models.CategoryOrganic, Price: money("2.50"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?w=400&h=400&fit=crop", InStock: true},
	{ID: "imported-avocado", Name: models.Localized{Ar: "أفوكادو", En: "Avocado"}, Category: models.CategoryImported, Price: money("1.00"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400&h=400&fit=crop", InStock: true, IsBestSeller: true},
	{ID: "imported-kiwi", Name: models.Localized{Ar: "كيوي", En: "Kiwi"}, Category: models.CategoryImported, Price: money("3.00"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1585059895524-72359e06133a?w=400&h=400&fit=crop", InStock: true},
	{ID: "imported-mango", Name: models.Localized{Ar: "مانجو", En: "Mango"}, Category: models.CategoryImported, Price: money("2.50"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1553279768-865429fa0078?w=400&h=400&fit=crop", InStock: true, IsDeal: true, DealPrice: moneyPtr("2.00")},
	{ID: "imported-pineapple", Name: models.Localized{Ar: "أناناس", En: "Pineapple"}, Category: models.CategoryImported, Price: money("2.50"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1550258987-190a2d41a8ba?w=400&h=400&fit=crop", InStock: true},
	{ID: "imported-blueberries", Name: models.Localized{Ar: "توت أزرق", En: "Blueberries"}, Category: models.CategoryImported, Price: money("4.00"), Unit: models.UnitGram250, Image: "https://images.unsplash.com/photo-1498557850523-fd3d118b962e?w=400&h=400&fit=crop", InStock: true},
	{ID: "imported-raspberries", Name: models.Localized{Ar: "توت أحمر", En: "Raspberries"}, Category: models.CategoryImported, Price: money("4.50"), Unit: models.UnitGram250, Image: "https://images.unsplash.com/photo-1577069861033-55d04cec4ef5?w=400&h=400&fit=crop", InStock: true},
	{ID: "imported-grapefruit", Name: models.Localized{Ar: "جريب فروت", En: "Grapefruit"}, Category: models.CategoryImported, Price: money("1.50"), Unit: models.UnitPiece, Image: "https://images.unsplash.com/photo-1577234286642-fc512a5f8f11?w=400&h=400&fit=crop", InStock: true},
	{ID: "imported-cherries", Name: models.Localized{Ar: "كرز", En: "Cherries"}, Category: models.CategoryImported, Price: money("8.00"), Unit: models.UnitKilogram, Image: "https://images.unsplash.com/photo-1528821128474-27f963b062bf?w=400&h=400&fit=crop", InStock: false},
}

// StaticProducts returns a fresh copy of the bundled catalog.
func StaticProducts() []*models.Product {
	out := make([]*models.Product, 0, len(staticProducts))
	for i := range staticProducts {
		out = append(out, clone(staticProducts[i]))
	}

	return out
}

func FindStaticProduct(id string) (*models.Product, bool) {
	for i := range staticProducts {
		if staticProducts[i].ID == id {
			return clone(staticProducts[i]), true
		}
	}

	return nil, false
}

func IsStatic(id string) bool {
	_, ok := FindStaticProduct(id)

	return ok
}

func clone(p models.Product) *models.Product {
	if p.DealPrice != nil {
		d := *p.DealPrice
		p.DealPrice = &d
	}

	return &p
}
