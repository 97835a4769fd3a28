// Package taxonomy holds the Windsor Framework Annex 2 category table.
//
// Declaration order is significant: the keyword matcher breaks ties in
// favour of the category that appears first.
package taxonomy

import (
	"slices"

	"LawTracker/internal/domain"
)

var categories = []domain.Category{
	{Number: 1, Name: "General customs aspects", Relevance: domain.RelevanceLow, Keywords: []string{"customs", "customs code", "mutual assistance", "recovery of claims"}},
	{Number: 2, Name: "Protection of the Union's financial interests", Relevance: domain.RelevanceLow, Keywords: []string{"anti-fraud", "OLAF", "financial interests"}},
	{Number: 3, Name: "Trade statistics", Relevance: domain.RelevanceLow, Keywords: []string{"trade statistics", "trading of goods", "external trade"}},
	{Number: 4, Name: "General trade related aspects", Relevance: domain.RelevanceLow, Keywords: []string{"tariff preferences", "exports", "imports", "textile", "conflict minerals"}},
	{Number: 5, Name: "Trade defence instruments", Relevance: domain.RelevanceLow, Keywords: []string{"anti-dumping", "anti-subsidy", "safeguard", "subsidised imports"}},
	{Number: 6, Name: "Regulations on bilateral safeguards", Relevance: domain.RelevanceLow, Keywords: []string{"bilateral safeguards", "stabilisation", "association agreement"}},
	{Number: 7, Name: "Others", Relevance: domain.RelevanceMedium, Keywords: []string{"compulsory licensing", "patents", "pharmaceutical products", "public health"}},
	{Number: 8, Name: "Goods - general provisions", Relevance: domain.RelevanceHigh, Keywords: []string{"technical regulations", "standardisation", "market surveillance", "product safety", "CE marking", "general product safety"}},
	{Number: 9, Name: "Motor vehicles", Relevance: domain.RelevanceHigh, Keywords: []string{"motor vehicles", "type-approval", "vehicle safety", "emissions", "Euro 5", "Euro 6", "tractors", "agricultural vehicles"}},
	{Number: 10, Name: "Lifting and mechanical handling appliances", Relevance: domain.RelevanceMedium, Keywords: []string{"lifts", "wire-ropes", "chains", "hooks", "lifting equipment"}},
	{Number: 11, Name: "Gas appliances", Relevance: domain.RelevanceHigh, Keywords: []string{"gas appliances", "boilers", "hot-water boilers", "gaseous fuels"}},
	{Number: 12, Name: "Pressure vessels", Relevance: domain.RelevanceMedium, Keywords: []string{"pressure vessels", "aerosol", "transportable pressure equipment"}},
	{Number: 13, Name: "Measuring instruments", Relevance: domain.RelevanceHigh, Keywords: []string{"measuring instruments", "metrological", "weighing", "prepackaged products"}},
	{Number: 14, Name: "Construction products, machinery, cableways, PPE", Relevance: domain.RelevanceHigh, Keywords: []string{"construction products", "machinery", "cableways", "personal protective equipment", "PPE"}},
	{Number: 15, Name: "Electrical and radio equipment", Relevance: domain.RelevanceHigh, Keywords: []string{"electrical equipment", "radio equipment", "electromagnetic compatibility", "voltage", "low voltage"}},
	{Number: 16, Name: "Textiles, footwear", Relevance: domain.RelevanceHigh, Keywords: []string{"textiles", "footwear", "fibre composition", "labelling"}},
	{Number: 17, Name: "Cosmetics, toys", Relevance: domain.RelevanceHigh, Keywords: []string{"cosmetics", "toys", "toy safety", "cosmetic products"}},
	{Number: 18, Name: "Recreational craft", Relevance: domain.RelevanceMedium, Keywords: []string{"recreational craft", "personal watercraft", "boats"}},
	{Number: 19, Name: "Explosives and pyrotechnic articles", Relevance: domain.RelevanceMedium, Keywords: []string{"explosives", "pyrotechnic", "fireworks"}},
	{Number: 20, Name: "Medicinal products", Relevance: domain.RelevanceHigh, Keywords: []string{"medicinal products", "medicines", "pharmaceuticals", "veterinary medicinal", "clinical trials", "pharmacovigilance"}},
	{Number: 21, Name: "Medical devices", Relevance: domain.RelevanceHigh, Keywords: []string{"medical devices", "in vitro diagnostic", "implantable"}},
	{Number: 22, Name: "Substances of human origin", Relevance: domain.RelevanceHigh, Keywords: []string{"blood", "tissues", "cells", "organs", "transplantation"}},
	{Number: 23, Name: "Chemicals and related", Relevance: domain.RelevanceHigh, Keywords: []string{"chemicals", "REACH", "fertilisers", "detergents", "batteries", "hazardous substances", "chemical substances", "CLP", "classification, labelling, packaging", "biocides", "biocidal products"}},
	{Number: 24, Name: "Pesticides, biocides", Relevance: domain.RelevanceHigh, Keywords: []string{"pesticides", "biocides", "plant protection products", "maximum residue levels", "MRL"}},
	{Number: 25, Name: "Waste", Relevance: domain.RelevanceMedium, Keywords: []string{"waste", "shipments of waste", "packaging waste", "ship recycling", "waste management"}},
	{Number: 26, Name: "Environment, energy efficiency", Relevance: domain.RelevanceHigh, Keywords: []string{"environment", "energy efficiency", "invasive species", "ecolabel", "fluorinated gases", "energy labelling", "F-gases"}},
	{Number: 27, Name: "Marine equipment", Relevance: domain.RelevanceLow, Keywords: []string{"marine equipment", "ship equipment"}},
	{Number: 28, Name: "Rail transport", Relevance: domain.RelevanceLow, Keywords: []string{"rail", "railway", "interoperability"}},
	{Number: 29, Name: "Food - general", Relevance: domain.RelevanceHigh, Keywords: []string{"food law", "food safety", "EFSA", "food information", "nutrition claims", "health claims"}},
	{Number: 30, Name: "Food - hygiene", Relevance: domain.RelevanceHigh, Keywords: []string{"food hygiene", "hygiene of foodstuffs", "food of animal origin"}},
	{Number: 31, Name: "Food - ingredients, traces, residues", Relevance: domain.RelevanceHigh, Keywords: []string{"food additives", "flavourings", "contaminants", "novel foods", "infant food", "food supplements"}},
	{Number: 32, Name: "Food contact material", Relevance: domain.RelevanceHigh, Keywords: []string{"food contact", "food contact material", "materials intended to come into contact with food"}},
	{Number: 33, Name: "Food - other", Relevance: domain.RelevanceHigh, Keywords: []string{"ionising radiation", "organic production", "organic products", "mineral waters"}},
	{Number: 34, Name: "Feed - products and hygiene", Relevance: domain.RelevanceMedium, Keywords: []string{"animal feed", "feed", "feed additives", "medicated feedingstuffs"}},
	{Number: 35, Name: "GMOs", Relevance: domain.RelevanceHigh, Keywords: []string{"GMO", "genetically modified", "GM food", "GM feed", "traceability"}},
	{Number: 36, Name: "Live animals, germinal products", Relevance: domain.RelevanceMedium, Keywords: []string{"live animals", "animal health", "bovine", "swine", "poultry", "semen", "embryos"}},
	{Number: 37, Name: "Animal disease control", Relevance: domain.RelevanceMedium, Keywords: []string{"animal disease", "zoonosis", "TSE", "BSE", "avian influenza", "swine fever"}},
	{Number: 38, Name: "Animal identification", Relevance: domain.RelevanceMedium, Keywords: []string{"animal identification", "registration", "traceability", "beef labelling"}},
	{Number: 39, Name: "Animal breeding", Relevance: domain.RelevanceLow, Keywords: []string{"animal breeding", "zootechnical", "breeding animals"}},
	{Number: 40, Name: "Animal welfare", Relevance: domain.RelevanceHigh, Keywords: []string{"animal welfare", "protection of animals", "transport of animals", "slaughter"}},
	{Number: 41, Name: "Plant health", Relevance: domain.RelevanceMedium, Keywords: []string{"plant health", "pests of plants", "harmful organisms", "phytosanitary"}},
	{Number: 42, Name: "Plant reproductive material", Relevance: domain.RelevanceLow, Keywords: []string{"seed", "cereal seed", "vegetable seed", "forest reproductive material"}},
	{Number: 43, Name: "Official controls, veterinary checks", Relevance: domain.RelevanceMedium, Keywords: []string{"official controls", "veterinary checks", "border inspection"}},
	{Number: 44, Name: "Sanitary and phytosanitary - Other", Relevance: domain.RelevanceHigh, Keywords: []string{"hormones", "beta-agonists", "residue monitoring"}},
	{Number: 45, Name: "Intellectual property", Relevance: domain.RelevanceHigh, Keywords: []string{"geographical indications", "PDO", "PGI", "spirit drinks", "wine"}},
	{Number: 46, Name: "Fisheries and aquaculture", Relevance: domain.RelevanceMedium, Keywords: []string{"fisheries", "aquaculture", "fish", "IUU fishing", "bluefin tuna"}},
	{Number: 47, Name: "Other", Relevance: domain.RelevanceMedium, Keywords: []string{"crude oil", "euro coins", "tobacco", "cultural goods", "dual-use items", "weapons", "firearms"}},
}

// All returns a copy of the ordered category table.
func All() []domain.Category {
	out := make([]domain.Category, len(categories))
	for i, category := range categories {
		category.Keywords = slices.Clone(category.Keywords)
		out[i] = category
	}
	return out
}

// Lookup finds a category by number. The result shares nothing with the table.
func Lookup(number int) (domain.Category, bool) {
	for _, category := range categories {
		if category.Number == number {
			category.Keywords = slices.Clone(category.Keywords)
			return category, true
		}
	}
	return domain.Category{}, false
}
