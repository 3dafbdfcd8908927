package catalog

// Builtin returns the default ~50-entry product table used when no
// catalog_path is configured. class_id values line up with the detector's
// class_name taxonomy; id 0 is never used here since it is reserved for the
// "hand" detection class.
func Builtin() []Product {
	return []Product{
		{ID: 1, Name: "coke_zero", UnitWeightG: 335, UnitPrice: 1800, Category: CategoryBeverage},
		{ID: 2, Name: "coke_original", UnitWeightG: 335, UnitPrice: 1800, Category: CategoryBeverage},
		{ID: 3, Name: "sprite", UnitWeightG: 335, UnitPrice: 1800, Category: CategoryBeverage},
		{ID: 4, Name: "fanta_orange", UnitWeightG: 335, UnitPrice: 1800, Category: CategoryBeverage},
		{ID: 5, Name: "cass_beer", UnitWeightG: 355, UnitPrice: 2200, Category: CategoryBeverage},
		{ID: 6, Name: "tejava", UnitWeightG: 500, UnitPrice: 1700, Category: CategoryBeverage},
		{ID: 7, Name: "bottled_water", UnitWeightG: 500, UnitPrice: 1000, Category: CategoryBeverage},
		{ID: 8, Name: "sparkling_water", UnitWeightG: 500, UnitPrice: 1500, Category: CategoryBeverage},
		{ID: 9, Name: "vita500", UnitWeightG: 130, UnitPrice: 1200, Category: CategoryBeverage},
		{ID: 10, Name: "pocari_sweat", UnitWeightG: 500, UnitPrice: 1900, Category: CategoryBeverage},
		{ID: 11, Name: "americano_can", UnitWeightG: 240, UnitPrice: 1600, Category: CategoryBeverage},
		{ID: 12, Name: "latte_can", UnitWeightG: 240, UnitPrice: 1800, Category: CategoryBeverage},
		{ID: 13, Name: "banana_milk", UnitWeightG: 240, UnitPrice: 1700, Category: CategoryDairy},
		{ID: 14, Name: "strawberry_milk", UnitWeightG: 240, UnitPrice: 1700, Category: CategoryDairy},
		{ID: 15, Name: "greek_yogurt", UnitWeightG: 150, UnitPrice: 2500, Category: CategoryDairy},
		{ID: 16, Name: "cheese_stick", UnitWeightG: 80, UnitPrice: 2200, Category: CategoryDairy},
		{ID: 17, Name: "string_cheese", UnitWeightG: 60, UnitPrice: 1800, Category: CategoryDairy},
		{ID: 18, Name: "potato_chips", UnitWeightG: 66, UnitPrice: 1700, Category: CategorySnack},
		{ID: 19, Name: "corn_chips", UnitWeightG: 70, UnitPrice: 1700, Category: CategorySnack},
		{ID: 20, Name: "rice_crackers", UnitWeightG: 90, UnitPrice: 1600, Category: CategorySnack},
		{ID: 21, Name: "pretzels", UnitWeightG: 85, UnitPrice: 1500, Category: CategorySnack},
		{ID: 22, Name: "almonds_pack", UnitWeightG: 50, UnitPrice: 2400, Category: CategorySnack},
		{ID: 23, Name: "mixed_nuts", UnitWeightG: 80, UnitPrice: 2800, Category: CategorySnack},
		{ID: 24, Name: "dried_seaweed_snack", UnitWeightG: 20, UnitPrice: 1500, Category: CategorySnack},
		{ID: 25, Name: "beef_jerky", UnitWeightG: 45, UnitPrice: 3500, Category: CategorySnack},
		{ID: 26, Name: "chickenmayo_rice", UnitWeightG: 365, UnitPrice: 3500, Category: CategoryFood},
		{ID: 27, Name: "tuna_rice", UnitWeightG: 365, UnitPrice: 3500, Category: CategoryFood},
		{ID: 28, Name: "bulgogi_rice", UnitWeightG: 380, UnitPrice: 3800, Category: CategoryFood},
		{ID: 29, Name: "kimchi_rice", UnitWeightG: 360, UnitPrice: 3300, Category: CategoryFood},
		{ID: 30, Name: "egg_sandwich", UnitWeightG: 150, UnitPrice: 3000, Category: CategoryFood},
		{ID: 31, Name: "ham_sandwich", UnitWeightG: 160, UnitPrice: 3200, Category: CategoryFood},
		{ID: 32, Name: "instant_noodle_cup", UnitWeightG: 65, UnitPrice: 1500, Category: CategoryFood},
		{ID: 33, Name: "instant_noodle_bowl", UnitWeightG: 110, UnitPrice: 2000, Category: CategoryFood},
		{ID: 34, Name: "chocolate_bar", UnitWeightG: 45, UnitPrice: 1800, Category: CategoryCandy},
		{ID: 35, Name: "chocolate_box", UnitWeightG: 90, UnitPrice: 3200, Category: CategoryCandy},
		{ID: 36, Name: "gummy_bears", UnitWeightG: 100, UnitPrice: 2000, Category: CategoryCandy},
		{ID: 37, Name: "hard_candy_bag", UnitWeightG: 130, UnitPrice: 2200, Category: CategoryCandy},
		{ID: 38, Name: "chewing_gum", UnitWeightG: 30, UnitPrice: 1200, Category: CategoryCandy},
		{ID: 39, Name: "mints_tin", UnitWeightG: 15, UnitPrice: 1300, Category: CategoryCandy},
		{ID: 40, Name: "cookie_pack", UnitWeightG: 75, UnitPrice: 1900, Category: CategorySnack},
		{ID: 41, Name: "energy_bar", UnitWeightG: 50, UnitPrice: 2500, Category: CategoryHealth},
		{ID: 42, Name: "protein_bar", UnitWeightG: 60, UnitPrice: 3000, Category: CategoryHealth},
		{ID: 43, Name: "vitamin_gummies", UnitWeightG: 100, UnitPrice: 4500, Category: CategoryHealth},
		{ID: 44, Name: "electrolyte_sachet", UnitWeightG: 20, UnitPrice: 2000, Category: CategoryHealth},
		{ID: 45, Name: "hand_sanitizer", UnitWeightG: 60, UnitPrice: 2500, Category: CategoryHealth},
		{ID: 46, Name: "ice_cream_cup", UnitWeightG: 120, UnitPrice: 2800, Category: CategoryFrozen},
		{ID: 47, Name: "ice_cream_bar", UnitWeightG: 80, UnitPrice: 2400, Category: CategoryFrozen},
		{ID: 48, Name: "frozen_dumplings", UnitWeightG: 300, UnitPrice: 5500, Category: CategoryFrozen},
		{ID: 49, Name: "popsicle", UnitWeightG: 70, UnitPrice: 1800, Category: CategoryFrozen},
		{ID: 50, Name: "umbrella_compact", UnitWeightG: 0, UnitPrice: 9900, Category: CategoryEtc},
		{ID: 51, Name: "phone_charm", UnitWeightG: 0, UnitPrice: 3500, Category: CategoryEtc},
	}
}
