// Package baseline lists the foundational acts named in Windsor Framework
// Annex 2, each pinned to its category.
package baseline

// Act is a baseline entry. Title is the fallback used when no English
// title can be fetched.
type Act struct {
	CELEX    string
	Category int
	Title    string
}

// Some acts appear under two categories; the first listing wins on merge.
var acts = []Act{
	{CELEX: "32013R0952", Category: 1, Title: "Regulation (EU) No 952/2013 - Union Customs Code"},
	{CELEX: "32015R2446", Category: 1, Title: "Commission Delegated Regulation (EU) 2015/2446 - Union Customs Code (Delegated)"},
	{CELEX: "32015R2447", Category: 1, Title: "Commission Implementing Regulation (EU) 2015/2447 - Union Customs Code (Implementing)"},
	{CELEX: "32017R1939", Category: 2, Title: "Council Regulation (EU) 2017/1939 - European Public Prosecutor's Office"},
	{CELEX: "32009R0471", Category: 3, Title: "Regulation (EC) No 471/2009 - Community statistics on external trade"},
	{CELEX: "32015R0478", Category: 4, Title: "Regulation (EU) 2015/478 - Common rules for imports"},
	{CELEX: "32015R0479", Category: 4, Title: "Regulation (EU) 2015/479 - Common rules for exports"},
	{CELEX: "32017R0821", Category: 4, Title: "Regulation (EU) 2017/821 - Conflict minerals"},
	{CELEX: "32016R1036", Category: 5, Title: "Regulation (EU) 2016/1036 - Protection against dumped imports"},
	{CELEX: "32016R1037", Category: 5, Title: "Regulation (EU) 2016/1037 - Protection against subsidised imports"},
	{CELEX: "32006R0816", Category: 7, Title: "Regulation (EC) No 816/2006 - Compulsory licensing of patents"},
	{CELEX: "32008R0765", Category: 8, Title: "Regulation (EC) No 765/2008 - Accreditation and market surveillance"},
	{CELEX: "32019R1020", Category: 8, Title: "Regulation (EU) 2019/1020 - Market surveillance and compliance of products"},
	{CELEX: "32001L0095", Category: 8, Title: "Directive 2001/95/EC - General product safety"},
	{CELEX: "32023R0988", Category: 8, Title: "Regulation (EU) 2023/988 - General Product Safety Regulation"},
	{CELEX: "31998L0034", Category: 8, Title: "Directive 98/34/EC - Technical standards and regulations"},
	{CELEX: "32012R1025", Category: 8, Title: "Regulation (EU) No 1025/2012 - European standardisation"},
	{CELEX: "32018R0858", Category: 9, Title: "Regulation (EU) 2018/858 - Motor vehicle type-approval"},
	{CELEX: "32007R0715", Category: 9, Title: "Regulation (EC) No 715/2007 - Emissions from light vehicles (Euro 5/6)"},
	{CELEX: "32009R0595", Category: 9, Title: "Regulation (EC) No 595/2009 - Emissions from heavy duty vehicles (Euro VI)"},
	{CELEX: "32014R0044", Category: 9, Title: "Regulation (EU) No 44/2014 - Vehicle construction requirements"},
	{CELEX: "32013R0168", Category: 9, Title: "Regulation (EU) No 168/2013 - Two/three-wheel vehicles and quadricycles"},
	{CELEX: "32013R0167", Category: 9, Title: "Regulation (EU) No 167/2013 - Agricultural and forestry vehicles"},
	{CELEX: "32014L0033", Category: 10, Title: "Directive 2014/33/EU - Lifts and safety components"},
	{CELEX: "31991L0368", Category: 10, Title: "Directive 91/368/EEC - Machinery (lifting)"},
	{CELEX: "32016R0426", Category: 11, Title: "Regulation (EU) 2016/426 - Appliances burning gaseous fuels"},
	{CELEX: "32013R0811", Category: 11, Title: "Regulation (EU) No 811/2013 - Energy labelling of heaters"},
	{CELEX: "32013R0812", Category: 11, Title: "Regulation (EU) No 812/2013 - Energy labelling of water heaters"},
	{CELEX: "31992L0042", Category: 11, Title: "Directive 92/42/EEC - Hot-water boilers"},
	{CELEX: "32014L0029", Category: 12, Title: "Directive 2014/29/EU - Simple pressure vessels"},
	{CELEX: "32014L0068", Category: 12, Title: "Directive 2014/68/EU - Pressure equipment"},
	{CELEX: "32010L0035", Category: 12, Title: "Directive 2010/35/EU - Transportable pressure equipment"},
	{CELEX: "31975L0324", Category: 12, Title: "Directive 75/324/EEC - Aerosol dispensers"},
	{CELEX: "32014L0031", Category: 13, Title: "Directive 2014/31/EU - Non-automatic weighing instruments"},
	{CELEX: "32014L0032", Category: 13, Title: "Directive 2014/32/EU - Measuring instruments"},
	{CELEX: "32009L0034", Category: 13, Title: "Directive 2009/34/EC - Measuring instruments (common provisions)"},
	{CELEX: "32007L0045", Category: 13, Title: "Directive 2007/45/EC - Nominal quantities for prepacked products"},
	{CELEX: "31976L0211", Category: 13, Title: "Directive 76/211/EEC - Making-up by weight or volume"},
	{CELEX: "32011R0305", Category: 14, Title: "Regulation (EU) No 305/2011 - Construction products"},
	{CELEX: "32006L0042", Category: 14, Title: "Directive 2006/42/EC - Machinery"},
	{CELEX: "32016R0424", Category: 14, Title: "Regulation (EU) 2016/424 - Cableway installations"},
	{CELEX: "32016R0425", Category: 14, Title: "Regulation (EU) 2016/425 - Personal protective equipment"},
	{CELEX: "32014L0035", Category: 15, Title: "Directive 2014/35/EU - Low voltage electrical equipment"},
	{CELEX: "32014L0030", Category: 15, Title: "Directive 2014/30/EU - Electromagnetic compatibility"},
	{CELEX: "32014L0053", Category: 15, Title: "Directive 2014/53/EU - Radio equipment"},
	{CELEX: "32009L0125", Category: 15, Title: "Directive 2009/125/EC - Ecodesign of energy-related products"},
	{CELEX: "32011R1007", Category: 16, Title: "Regulation (EU) No 1007/2011 - Textile fibre names and labelling"},
	{CELEX: "31994L0011", Category: 16, Title: "Directive 94/11/EC - Labelling of footwear materials"},
	{CELEX: "32009R1223", Category: 17, Title: "Regulation (EC) No 1223/2009 - Cosmetic products"},
	{CELEX: "32009L0048", Category: 17, Title: "Directive 2009/48/EC - Safety of toys"},
	{CELEX: "32013L0053", Category: 18, Title: "Directive 2013/53/EU - Recreational craft and personal watercraft"},
	{CELEX: "32014L0028", Category: 19, Title: "Directive 2014/28/EU - Explosives for civil uses"},
	{CELEX: "32013L0029", Category: 19, Title: "Directive 2013/29/EU - Pyrotechnic articles"},
	{CELEX: "32001L0083", Category: 20, Title: "Directive 2001/83/EC - Medicinal products for human use"},
	{CELEX: "32001L0082", Category: 20, Title: "Directive 2001/82/EC - Veterinary medicinal products"},
	{CELEX: "32019R0006", Category: 20, Title: "Regulation (EU) 2019/6 - Veterinary medicinal products"},
	{CELEX: "32004R0726", Category: 20, Title: "Regulation (EC) No 726/2004 - European Medicines Agency procedures"},
	{CELEX: "32014R0536", Category: 20, Title: "Regulation (EU) No 536/2014 - Clinical trials"},
	{CELEX: "32006R1901", Category: 20, Title: "Regulation (EC) No 1901/2006 - Paediatric medicinal products"},
	{CELEX: "32004L0024", Category: 20, Title: "Directive 2004/24/EC - Traditional herbal medicinal products"},
	{CELEX: "32017R0745", Category: 21, Title: "Regulation (EU) 2017/745 - Medical devices"},
	{CELEX: "32017R0746", Category: 21, Title: "Regulation (EU) 2017/746 - In vitro diagnostic medical devices"},
	{CELEX: "32002L0098", Category: 22, Title: "Directive 2002/98/EC - Standards for blood and blood components"},
	{CELEX: "32004L0023", Category: 22, Title: "Directive 2004/23/EC - Standards for human tissues and cells"},
	{CELEX: "32010L0053", Category: 22, Title: "Directive 2010/53/EU - Standards for human organs"},
	{CELEX: "32006R1907", Category: 23, Title: "Regulation (EC) No 1907/2006 - REACH (chemicals)"},
	{CELEX: "32008R1272", Category: 23, Title: "Regulation (EC) No 1272/2008 - CLP (classification, labelling, packaging)"},
	{CELEX: "32019R1021", Category: 23, Title: "Regulation (EU) 2019/1021 - Persistent organic pollutants"},
	{CELEX: "32012R0528", Category: 23, Title: "Regulation (EU) No 528/2012 - Biocidal products"},
	{CELEX: "32003R2003", Category: 23, Title: "Regulation (EC) No 2003/2003 - Fertilisers"},
	{CELEX: "32019R1009", Category: 23, Title: "Regulation (EU) 2019/1009 - EU fertilising products"},
	{CELEX: "32004R0648", Category: 23, Title: "Regulation (EC) No 648/2004 - Detergents"},
	{CELEX: "32006L0066", Category: 23, Title: "Directive 2006/66/EC - Batteries and accumulators"},
	{CELEX: "32023R1542", Category: 23, Title: "Regulation (EU) 2023/1542 - Batteries and waste batteries"},
	{CELEX: "32011L0065", Category: 23, Title: "Directive 2011/65/EU - RoHS (hazardous substances in electrical equipment)"},
	{CELEX: "32017R0852", Category: 23, Title: "Regulation (EU) 2017/852 - Mercury"},
	{CELEX: "32019R1148", Category: 23, Title: "Regulation (EU) 2019/1148 - Explosives precursors"},
	{CELEX: "32009R1005", Category: 23, Title: "Regulation (EC) No 1005/2009 - Ozone depleting substances"},
	{CELEX: "32009R1107", Category: 24, Title: "Regulation (EC) No 1107/2009 - Plant protection products"},
	{CELEX: "32005R0396", Category: 24, Title: "Regulation (EC) No 396/2005 - Maximum residue levels of pesticides"},
	{CELEX: "32009L0128", Category: 24, Title: "Directive 2009/128/EC - Sustainable use of pesticides"},
	{CELEX: "32012R0528", Category: 24, Title: "Regulation (EU) No 528/2012 - Biocidal products"},
	{CELEX: "32008L0098", Category: 25, Title: "Directive 2008/98/EC - Waste Framework Directive"},
	{CELEX: "32006R1013", Category: 25, Title: "Regulation (EC) No 1013/2006 - Shipments of waste"},
	{CELEX: "31994L0062", Category: 25, Title: "Directive 94/62/EC - Packaging and packaging waste"},
	{CELEX: "32012L0019", Category: 25, Title: "Directive 2012/19/EU - WEEE (electronic waste)"},
	{CELEX: "32000L0053", Category: 25, Title: "Directive 2000/53/EC - End-of-life vehicles"},
	{CELEX: "32013R1257", Category: 25, Title: "Regulation (EU) No 1257/2013 - Ship recycling"},
	{CELEX: "32010L0030", Category: 26, Title: "Directive 2010/30/EU - Energy labelling"},
	{CELEX: "32017R1369", Category: 26, Title: "Regulation (EU) 2017/1369 - Energy labelling framework"},
	{CELEX: "32009L0125", Category: 26, Title: "Directive 2009/125/EC - Ecodesign requirements"},
	{CELEX: "32010R0066", Category: 26, Title: "Regulation (EC) No 66/2010 - EU Ecolabel"},
	{CELEX: "32014R1143", Category: 26, Title: "Regulation (EU) No 1143/2014 - Invasive alien species"},
	{CELEX: "32014R0517", Category: 26, Title: "Regulation (EU) No 517/2014 - Fluorinated greenhouse gases"},
	{CELEX: "32024R0573", Category: 26, Title: "Regulation (EU) 2024/573 - Fluorinated greenhouse gases (recast)"},
	{CELEX: "32014L0090", Category: 27, Title: "Directive 2014/90/EU - Marine equipment"},
	{CELEX: "32016L0797", Category: 28, Title: "Directive (EU) 2016/797 - Railway interoperability"},
	{CELEX: "32016L0798", Category: 28, Title: "Directive (EU) 2016/798 - Railway safety"},
	{CELEX: "32002R0178", Category: 29, Title: "Regulation (EC) No 178/2002 - General food law"},
	{CELEX: "32011R1169", Category: 29, Title: "Regulation (EU) No 1169/2011 - Food information to consumers"},
	{CELEX: "32006R1924", Category: 29, Title: "Regulation (EC) No 1924/2006 - Nutrition and health claims"},
	{CELEX: "32009R1925", Category: 29, Title: "Regulation (EC) No 1925/2006 - Addition of vitamins and minerals to foods"},
	{CELEX: "32004R0852", Category: 30, Title: "Regulation (EC) No 852/2004 - Hygiene of foodstuffs"},
	{CELEX: "32004R0853", Category: 30, Title: "Regulation (EC) No 853/2004 - Hygiene for food of animal origin"},
	{CELEX: "32005R2073", Category: 30, Title: "Regulation (EC) No 2073/2005 - Microbiological criteria for foodstuffs"},
	{CELEX: "32008R1333", Category: 31, Title: "Regulation (EC) No 1333/2008 - Food additives"},
	{CELEX: "32008R1334", Category: 31, Title: "Regulation (EC) No 1334/2008 - Flavourings in food"},
	{CELEX: "32009R0470", Category: 31, Title: "Regulation (EC) No 470/2009 - Residue limits in foodstuffs"},
	{CELEX: "32006R1881", Category: 31, Title: "Regulation (EC) No 1881/2006 - Maximum levels for contaminants"},
	{CELEX: "32015R2283", Category: 31, Title: "Regulation (EU) 2015/2283 - Novel foods"},
	{CELEX: "32006L0141", Category: 31, Title: "Directive 2006/141/EC - Infant formulae"},
	{CELEX: "32013R0609", Category: 31, Title: "Regulation (EU) No 609/2013 - Food for specific groups"},
	{CELEX: "32004R1935", Category: 32, Title: "Regulation (EC) No 1935/2004 - Materials in contact with food"},
	{CELEX: "32011R0010", Category: 32, Title: "Regulation (EU) No 10/2011 - Plastic materials in contact with food"},
	{CELEX: "31999L0002", Category: 33, Title: "Directive 1999/2/EC - Ionising radiation of food"},
	{CELEX: "32018R0848", Category: 33, Title: "Regulation (EU) 2018/848 - Organic production"},
	{CELEX: "32009L0054", Category: 33, Title: "Directive 2009/54/EC - Natural mineral waters"},
	{CELEX: "32009R0767", Category: 34, Title: "Regulation (EC) No 767/2009 - Feed marketing"},
	{CELEX: "32003R1831", Category: 34, Title: "Regulation (EC) No 1831/2003 - Feed additives"},
	{CELEX: "32005R0183", Category: 34, Title: "Regulation (EC) No 183/2005 - Feed hygiene"},
	{CELEX: "32019R0004", Category: 34, Title: "Regulation (EU) 2019/4 - Medicated feed"},
	{CELEX: "32001L0018", Category: 35, Title: "Directive 2001/18/EC - Release of GMOs into environment"},
	{CELEX: "32003R1829", Category: 35, Title: "Regulation (EC) No 1829/2003 - GM food and feed"},
	{CELEX: "32003R1830", Category: 35, Title: "Regulation (EC) No 1830/2003 - Traceability of GMOs"},
	{CELEX: "32016R0429", Category: 36, Title: "Regulation (EU) 2016/429 - Animal health law"},
	{CELEX: "32020R0692", Category: 36, Title: "Delegated Regulation (EU) 2020/692 - Entry of animals into Union"},
	{CELEX: "32016R0429", Category: 37, Title: "Regulation (EU) 2016/429 - Animal health law (disease provisions)"},
	{CELEX: "32001R0999", Category: 37, Title: "Regulation (EC) No 999/2001 - TSE (BSE/scrapie) rules"},
	{CELEX: "32005L0094", Category: 37, Title: "Directive 2005/94/EC - Avian influenza control"},
	{CELEX: "32001L0089", Category: 37, Title: "Directive 2001/89/EC - Classical swine fever"},
	{CELEX: "32021R0520", Category: 38, Title: "Regulation (EU) 2021/520 - Traceability of animals"},
	{CELEX: "32000R1760", Category: 38, Title: "Regulation (EC) No 1760/2000 - Beef labelling and identification"},
	{CELEX: "32016R1012", Category: 39, Title: "Regulation (EU) 2016/1012 - Animal breeding"},
	{CELEX: "32005R0001", Category: 40, Title: "Regulation (EC) No 1/2005 - Animal transport"},
	{CELEX: "32009R1099", Category: 40, Title: "Regulation (EC) No 1099/2009 - Animal slaughter"},
	{CELEX: "31998L0058", Category: 40, Title: "Directive 98/58/EC - Farm animal protection"},
	{CELEX: "31999L0074", Category: 40, Title: "Directive 1999/74/EC - Laying hens welfare"},
	{CELEX: "32007L0043", Category: 40, Title: "Directive 2007/43/EC - Broiler chicken welfare"},
	{CELEX: "32008L0119", Category: 40, Title: "Directive 2008/119/EC - Calf welfare"},
	{CELEX: "32008L0120", Category: 40, Title: "Directive 2008/120/EC - Pig welfare"},
	{CELEX: "32016R2031", Category: 41, Title: "Regulation (EU) 2016/2031 - Plant health"},
	{CELEX: "32017R0625", Category: 41, Title: "Regulation (EU) 2017/625 - Official controls"},
	{CELEX: "32002L0053", Category: 42, Title: "Directive 2002/53/EC - Agricultural plant species"},
	{CELEX: "32002L0054", Category: 42, Title: "Directive 2002/54/EC - Beet seed"},
	{CELEX: "32002L0055", Category: 42, Title: "Directive 2002/55/EC - Vegetable seed"},
	{CELEX: "32002L0056", Category: 42, Title: "Directive 2002/56/EC - Seed potatoes"},
	{CELEX: "32002L0057", Category: 42, Title: "Directive 2002/57/EC - Oil and fibre plants seed"},
	{CELEX: "31999L0105", Category: 42, Title: "Directive 1999/105/EC - Forest reproductive material"},
	{CELEX: "32017R0625", Category: 43, Title: "Regulation (EU) 2017/625 - Official controls on food/feed"},
	{CELEX: "32019R2130", Category: 43, Title: "Implementing Regulation (EU) 2019/2130 - Border control posts"},
	{CELEX: "31996L0022", Category: 44, Title: "Directive 96/22/EC - Hormones in animal production"},
	{CELEX: "31996L0023", Category: 44, Title: "Directive 96/23/EC - Residue monitoring in animals"},
	{CELEX: "32012R1151", Category: 45, Title: "Regulation (EU) No 1151/2012 - Quality schemes (PDO/PGI)"},
	{CELEX: "32019R0787", Category: 45, Title: "Regulation (EU) 2019/787 - Spirit drinks"},
	{CELEX: "32013R1308", Category: 45, Title: "Regulation (EU) No 1308/2013 - CMO (wine GIs)"},
	{CELEX: "32019R0033", Category: 45, Title: "Delegated Regulation (EU) 2019/33 - Wine labelling"},
	{CELEX: "32008R1005", Category: 46, Title: "Regulation (EC) No 1005/2008 - IUU fishing"},
	{CELEX: "32009R1224", Category: 46, Title: "Regulation (EC) No 1224/2009 - Fisheries control"},
	{CELEX: "32016R1627", Category: 46, Title: "Regulation (EU) 2016/1627 - Bluefin tuna recovery"},
	{CELEX: "32009R0428", Category: 47, Title: "Regulation (EC) No 428/2009 - Dual-use items"},
	{CELEX: "32021R0821", Category: 47, Title: "Regulation (EU) 2021/821 - Dual-use items (recast)"},
	{CELEX: "32019L1153", Category: 47, Title: "Directive (EU) 2019/1153 - Use of financial info (anti-money laundering)"},
	{CELEX: "32014L0040", Category: 47, Title: "Directive 2014/40/EU - Tobacco products"},
}

// Acts returns the baseline list in declaration order.
func Acts() []Act {
	out := make([]Act, len(acts))
	copy(out, acts)
	return out
}
