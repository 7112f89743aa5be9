package knowledge

// classLabels mirrors the output layer of the pretrained model. The residual
// category is spelled "trash" everywhere; the model card's "Other Trash"
// alias is not used as a key.
var classLabels = []string{
	"battery", "biological", "brown-glass", "cardboard", "clothes",
	"green-glass", "metal", "paper", "plastic", "shoes", "trash", "white-glass",
}

var wasteInfo = map[string]WasteFact{
	"battery": {
		Description:               "Batteries contain heavy metals (lead, cadmium, mercury) and are harmful.",
		Recycle:                   "Return to e-waste / battery collection centers. Do not throw in household trash.",
		Hazard:                    "High — toxic if leaked into soil/water.",
		DecompositionTime:         "100+ years",
		CarbonSavingKgPerKg:       8.0,
		LandfillReductionM3PerTon: 0.5,
		Tip:                       "Tape terminals and store for safe transport to recycling center.",
	},
	"biological": {
		Description:               "Organic waste (food scraps, garden waste) that is biodegradable.",
		Recycle:                   "Compost or municipal organic waste collections / anaerobic digesters.",
		Hazard:                    "Low if composted correctly; avoid mixing with plastics.",
		DecompositionTime:         "2–12 weeks (compostable)",
		CarbonSavingKgPerKg:       0.2,
		LandfillReductionM3PerTon: 0.8,
		Tip:                       "Keep moist and balanced (greens/browns) for efficient composting.",
	},
	"brown-glass": {
		Description:               "Brown (amber) glass bottles and jars used for beverages.",
		Recycle:                   "Rinse and drop at glass recycling points; separate colors if your local scheme requires it.",
		Hazard:                    "Low (physical hazard if broken).",
		DecompositionTime:         "Non-biodegradable (effectively infinite)",
		CarbonSavingKgPerKg:       0.5,
		LandfillReductionM3PerTon: 0.6,
		Tip:                       "Keep clean; remove lids if required by local rules.",
	},
	"cardboard": {
		Description:               "Boxes, cartons and corrugated cardboard.",
		Recycle:                   "Flatten, remove contaminants, and recycle with paper/cardboard streams.",
		Hazard:                    "Low.",
		DecompositionTime:         "2 months (varies)",
		CarbonSavingKgPerKg:       1.2,
		LandfillReductionM3PerTon: 3.0,
		Tip:                       "Break down boxes to save space and speed recycling.",
	},
	"clothes": {
		Description:               "Textiles and garments (natural and synthetic).",
		Recycle:                   "Donate wearable items; textile-recycling programs convert fibers to new products.",
		Hazard:                    "Moderate due to dyes and mixed materials.",
		DecompositionTime:         "Months to years",
		CarbonSavingKgPerKg:       2.0,
		LandfillReductionM3PerTon: 2.5,
		Tip:                       "Donate or upcycle instead of discarding.",
	},
	"green-glass": {
		Description:               "Green glass bottles/jars.",
		Recycle:                   "Recycle at glass collection; can be infinitely recycled.",
		Hazard:                    "Low (if broken physical hazard).",
		DecompositionTime:         "Non-biodegradable",
		CarbonSavingKgPerKg:       0.5,
		LandfillReductionM3PerTon: 0.6,
		Tip:                       "Rinse and separate if required.",
	},
	"metal": {
		Description:               "Cans, tins and scrap metals (aluminium, steel).",
		Recycle:                   "Very recyclable — take to scrap dealers or metal recycling bins.",
		Hazard:                    "Low, but sharp edges can cause injury.",
		DecompositionTime:         "50–200 years",
		CarbonSavingKgPerKg:       10.0,
		LandfillReductionM3PerTon: 1.8,
		Tip:                       "Crush cans to save space and rinse leftover contents.",
	},
	"paper": {
		Description:               "Newspapers, office paper, magazines.",
		Recycle:                   "Recycle in paper stream; keep dry and free of food contamination.",
		Hazard:                    "Low.",
		DecompositionTime:         "2–6 weeks",
		CarbonSavingKgPerKg:       1.4,
		LandfillReductionM3PerTon: 3.3,
		Tip:                       "Reuse sheets for notes or crafts before recycling.",
	},
	"plastic": {
		Description:               "Plastic packaging, bottles, containers (various resin codes).",
		Recycle:                   "Check local acceptance; PET & HDPE widely accepted; others vary.",
		Hazard:                    "High — microplastics and long-term persistence in environment.",
		DecompositionTime:         "100s to 1000s of years",
		CarbonSavingKgPerKg:       2.5,
		LandfillReductionM3PerTon: 2.0,
		Tip:                       "Rinse and sort by type if possible; avoid single-use plastics.",
	},
	"shoes": {
		Description:               "Footwear (synthetic and natural materials).",
		Recycle:                   "Donate if wearable; certain programs recycle soles into surfaces/insulation.",
		Hazard:                    "Moderate — mixed materials hard to recycle.",
		DecompositionTime:         "25–40 years for synthetics",
		CarbonSavingKgPerKg:       0.8,
		LandfillReductionM3PerTon: 1.1,
		Tip:                       "Repair or donate before recycling/disposal.",
	},
	"trash": {
		Description:               "Non-recyclable residual waste (mixed contaminants).",
		Recycle:                   "Not recyclable. Reduce by source separation; follow municipal guidance.",
		Hazard:                    "Varies; can contain hazardous items.",
		DecompositionTime:         "Varies widely",
		CarbonSavingKgPerKg:       0.0,
		LandfillReductionM3PerTon: 0.0,
		Tip:                       "Segregate recyclables and hazardous waste first.",
	},
	"white-glass": {
		Description:               "Clear/white glass bottles/jars.",
		Recycle:                   "Highly recyclable; separate by color if required.",
		Hazard:                    "Low (broken glass hazard).",
		DecompositionTime:         "Non-biodegradable",
		CarbonSavingKgPerKg:       0.5,
		LandfillReductionM3PerTon: 0.6,
		Tip:                       "Rinse and recycle.",
	},
}

var recyclabilityScore = map[string]int{
	"battery": 10, "biological": 90, "brown-glass": 85, "cardboard": 95,
	"clothes": 60, "green-glass": 85, "metal": 98, "paper": 96,
	"plastic": 50, "shoes": 40, "trash": 10, "white-glass": 85,
}

var didYouKnow = []string{
	"Recycling 1 aluminum can saves enough energy to run a TV for 3 hours.",
	"Plastic bottles can take up to 1000 years to decompose.",
	"Composting food waste reduces methane emissions from landfills.",
	"Recycling 1 ton of paper saves 17 trees.",
	"Glass is 100% recyclable and can be reused endlessly without loss of quality.",
}
