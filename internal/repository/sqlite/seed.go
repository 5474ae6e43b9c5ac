package sqlite

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SeedSummary reports how many rows each table gained during seeding.
type SeedSummary struct {
	Breeds        int
	Schemes       int
	EcoPractices  int
	PriceTrends   int
	Diseases      int
	BreedingPairs int
	Offspring     int
}

var seedBreeds = []struct {
	name, region string
	milkYield    int
	strength     string
	lifespan     int
	imageURL     string
}{
	{"Gir", "Gujarat", 12, "High", 18, "images/gir.jpg"},
	{"Sahiwal", "Punjab", 14, "Medium", 20, "images/sahiwal.jpg"},
	{"Ongole", "Andhra Pradesh", 10, "Very High", 22, "images/ongole.jpg"},
	{"Punganur", "Andhra Pradesh", 6, "Low", 15, "images/punganur.jpg"},
	{"Amrit Mahal", "Karnataka", 7, "High", 18, "images/amrit_mahal.jpg"},
	{"Deoni", "Maharashtra", 9, "Medium", 19, "images/deoni.jpg"},
	{"Hallikar", "Karnataka", 8, "Very High", 20, "images/hallikar.jpg"},
	{"Kankrej", "Gujarat", 11, "High", 21, "images/kankrej.jpg"},
	{"Krishna Valley", "Karnataka", 7, "Very High", 19, "images/krishna_valley.jpg"},
	{"Malnad Gidda", "Karnataka", 5, "Medium", 16, "images/malnad_gidda.jpg"},
	{"Rathi", "Rajasthan", 10, "Medium", 20, "images/rathi.jpg"},
	{"Red Sindhi", "Sindh (Origin)", 11, "High", 22, "images/red_sindhi.jpg"},
	{"Tharparkar", "Rajasthan", 9, "Medium", 21, "images/tharparkar.jpg"},
}

var seedSchemes = []struct {
	name, details, region, schemeType, url string
}{
	{"Rashtriya Gokul Mission", "Promotes indigenous cattle breeding and genetic improvement.", "All India / Central", "Animal Husbandry", "https://dahd.nic.in/schemes/programmes/rashtriya-gokul-mission"},
	{"National Livestock Mission (NLM)", "Sustainable development of livestock sector, covering feed/fodder, breed improvement, entrepreneurship.", "All India / Central", "Animal Husbandry", "https://dahd.nic.in/nlm"},
	{"Dairy Entrepreneurship Development Scheme (DEDS - replaced by DIDF aspects)", "Financial support for setting up small dairy farms & units (Check NABARD/NDDB for current alternatives like DIDF).", "All India / Central", "Dairy Development", "https://www.nabard.org/content1.aspx?id=591"},
	{"Kisan Credit Card (KCC) Scheme", "Provides short-term credit to farmers for agriculture and allied activities including animal husbandry.", "All India / Central", "Finance/Credit", "https://pmkisan.gov.in/kcc/"},
	{"PM-KUSUM", "Promotes solar energy use in agriculture, including solar pumps and potentially solar power for dairy farms/biogas plants.", "All India / Central", "Energy/Agriculture", "https://pmkusum.mnre.gov.in/"},
	{"National Programme for Dairy Development (NPDD)", "Aims to strengthen dairy cooperatives and increase milk production.", "All India / Central", "Dairy Development", "https://dahd.nic.in/npdd"},
	{"Livestock Health & Disease Control (LH&DC) Programme", "Focuses on prevention, control and eradication of animal diseases, including FMD, Brucellosis.", "All India / Central", "Animal Health", "https://dahd.nic.in/lh-dc"},
	{"Animal Husbandry Infrastructure Development Fund (AHIDF)", "Incentivizes investments in dairy processing, value addition infrastructure, and animal feed plants.", "All India / Central", "Infrastructure", "https://ahidf.udyamimitra.in/"},
	{"Gobar Dhan Scheme", "Promotes converting cattle dung and solid waste into compost, biogas, and biofuel.", "All India / Central", "Waste Management/Energy", "https://sbm.gov.in/Gobardhan/"},
	{"Mukhyamantri Dugdh Utpadak Sambal Yojana (Rajasthan)", "Provides bonus per litre of milk to cooperative dairy farmers.", "Rajasthan", "Subsidy/Incentive", "https://animalhusbandry.rajasthan.gov.in/"},
	{"Mukhyamantri Gau Mata Poshan Yojana (Gujarat)", "Assistance for maintenance of unproductive/old cattle in Gaushalas/Panjrapoles.", "Gujarat", "Animal Welfare", "https://cmogujarat.gov.in/en/latest-news/greeting-ceremony-cm-announcing-mukhyamantri-gaumata-poshan-yojana"},
	{"Ksheera Santhwanam (Kerala)", "Insurance scheme for dairy farmers covering cattle death.", "Kerala", "Insurance/Welfare", "https://ksheerasree.kerala.gov.in/"},
	{"Nand Baba Milk Mission (Uttar Pradesh)", "Aims to enhance dairy infrastructure and market access for milk producers.", "Uttar Pradesh", "Dairy Development", "https://updairydevelopment.gov.in/"},
}

var seedEcoPractices = []struct {
	name, description, category, suitability string
}{
	{"Manure Composting", "Decomposing manure with crop residues to create rich organic fertilizer.", "Manure Management", "Cattle Farms"},
	{"Biogas Production", "Anaerobic digestion of dung to produce cooking gas and slurry.", "Manure Management/Energy", "Cattle Farms"},
	{"Rainwater Harvesting", "Collecting and storing rainwater for livestock drinking or irrigation.", "Water Conservation", "Both"},
	{"Drip Irrigation (for Fodder)", "Efficient water delivery directly to fodder crop roots.", "Water Conservation", "Crop Farms/Both"},
	{"Rotational Grazing", "Moving livestock between paddocks to improve pasture health.", "Pasture Management", "Cattle Farms"},
	{"Silvopasture", "Integrating trees with pasture for fodder, shade, and biodiversity.", "Agroforestry", "Cattle Farms"},
	{"Vermicomposting", "Using earthworms to convert dung/organic waste into high-quality compost.", "Manure Management", "Both"},
	{"Integrated Pest Management (IPM)", "Using biological and cultural methods to control pests in fodder crops.", "Crop Management", "Crop Farms/Both"},
}

var seedPriceTrends = []struct {
	year, month   int
	breed, region string
	price         float64
}{
	{2023, 10, "Gir", "Gujarat", 65000},
	{2023, 10, "Sahiwal", "Punjab", 68000},
	{2023, 11, "Gir", "Gujarat", 66000},
	{2023, 11, "Sahiwal", "Punjab", 67500},
	{2023, 12, "Gir", "Gujarat", 67000},
	{2023, 12, "Sahiwal", "Punjab", 69000},
	{2023, 12, "Crossbred", "Maharashtra", 55000},
	{2024, 1, "Gir", "Gujarat", 68000},
	{2024, 1, "Sahiwal", "Punjab", 70000},
	{2024, 1, "Crossbred", "Maharashtra", 56000},
	{2024, 2, "Gir", "Gujarat", 68500},
	{2024, 2, "Sahiwal", "Punjab", 71000},
	{2024, 2, "Ongole", "Andhra Pradesh", 60000},
}

var seedDiseases = []struct {
	symptoms, disease, treatment, severity, notes string
}{
	{"High fever, shivering, nasal discharge, cough, difficulty breathing", "Bovine Respiratory Disease (BRD) Complex", "Consult Vet. Antibiotics (if bacterial), anti-inflammatories, supportive care (fluids, rest), improve ventilation.", "Medium to High", "Common in young/stressed cattle."},
	{"Watery diarrhea (sometimes bloody), dehydration, weakness, loss of appetite (esp. calves)", "Scours (Calf Diarrhea)", "Consult Vet. Fluid therapy (oral/IV electrolytes) is critical. Identify cause (viral, bacterial, protozoal) for specific treatment. Keep calf warm & clean.", "High (in calves)", "Multiple causes. Hygiene is key prevention."},
	{"Sudden high fever, lameness, swelling with gas/crackling sound in large muscles (hip, shoulder)", "Black Quarter (BQ)", "Consult Vet Immediately. High dose Penicillin if caught extremely early. Often fatal. Vaccination is highly effective for prevention.", "High", "Caused by Clostridium chauvoei bacteria."},
	{"High fever, depression, ropey saliva, nasal discharge, sudden death possible", "Haemorrhagic Septicaemia (HS)", "Consult Vet Immediately. Specific antibiotics (e.g., Oxytetracycline, Sulphonamides). Vaccination is crucial in endemic areas.", "High", "Caused by Pasteurella multocida. Common in monsoon."},
	{"Blisters/vesicles on tongue, gums, feet (causing lameness), drooling, fever, drop in milk yield", "Foot-and-Mouth Disease (FMD)", "Consult Vet & Report. Highly contagious. Supportive care (soft food, antiseptic mouth/foot wash). Strict biosecurity. Vaccination provides protection.", "High (due to economic impact)", "Viral disease. Reportable."},
	{"Swollen, hard, hot, painful udder quarter(s), abnormal milk (clots, watery, bloody), reduced yield, fever possible", "Mastitis", "Consult Vet. Intramammary antibiotics based on culture/sensitivity. Frequent milking out. Anti-inflammatories. Prevention via hygiene, proper milking.", "Medium to High", "Bacterial infection is common cause."},
	{"Distended left abdomen (bloat), discomfort, difficulty breathing, kicking at belly, sudden death possible", "Bloat (Ruminal Tympany)", "Consult Vet. Emergency. Stomach tube to release gas. Anti-bloat medication (oils, poloxalene). For frothy bloat, trocarization may be needed. Prevent via gradual feed changes.", "High", "Frothy (legumes) or free gas bloat."},
	{"Gradual weight loss despite good appetite, chronic diarrhea, reduced milk yield, bottle jaw (late stage)", "Johne's Disease (Paratuberculosis)", "Consult Vet. No cure. Test and cull positive animals to control spread. Highly infectious via manure. Long incubation period.", "Medium (chronic, herd impact)", "Caused by Mycobacterium avium subspecies paratuberculosis."},
	{"Fever, anemia (pale gums), jaundice (yellowing), red/dark urine, weakness, tick infestation often present", "Babesiosis / Theileriosis (Tick Fever)", "Consult Vet. Specific anti-parasitic drugs (e.g., Diminazene, Buparvaquone). Blood transfusion if severe anemia. Tick control is essential for prevention.", "Medium to High", "Protozoan parasites transmitted by ticks."},
	{"Firm, raised lumps on skin all over body, fever, swollen lymph nodes, nasal/eye discharge, drop in milk yield", "Lumpy Skin Disease (LSD)", "Consult Vet. Supportive care (anti-inflammatories, wound care). Antibiotics for secondary bacterial infections. Vector (insect) control helps. Vaccination available.", "Medium to High", "Viral disease spread by insects."},
}

var seedBreedingPairs = []struct {
	cattle1, cattle2, goal string
	score                  int
	status, notes          string
	ageDays                int
}{
	{"GIR-BULL-01", "GIR-COW-A5", "High Milk Yield", 85, "Suggested", "Good match for milk traits.", 10},
	{"SAH-BULL-03", "SAH-COW-B2", "Breed Purity", 92, "Suggested", "Excellent lineage match.", 8},
	{"ONG-BULL-X1", "KANK-COW-C7", "Dual Purpose (Milk & Draft)", 78, "Suggested", "Potential hybrid vigor for strength and moderate milk.", 5},
	{"RATHI-BULL-R2", "RATHI-COW-D1", "Drought Tolerance", 88, "Completed", "Successful pairing, offspring recorded.", 30},
	{"GIR-BULL-01", "GIR-COW-A8", "High Milk Yield", 82, "Suggested", "Alternative pairing for milk.", 2},
	{"HALLIKAR-BULL-H1", "AMRIT-COW-AM2", "High Draft Power", 90, "Confirmed", "Scheduled for AI next cycle.", 1},
}

var seedOffspring = []struct {
	parent1, parent2, offspringID, breed, sex, dob, predicted, actual string
	ageDays                                                           int
}{
	{"RATHI-BULL-R2", "RATHI-COW-D1", "RATHI-CALF-001", "Rathi", "Female", "2023-11-15", "Good confirmation, expected moderate milk", "Developing well, good temperament", 25},
	{"GIR-BULL-01", "GIR-COW-A5", "GIR-CALF-001", "Gir", "Male", "2024-01-20", "High milk potential (dam side), good frame", "", 5},
	{"SAH-BULL-03", "SAH-COW-B2", "SAH-CALF-001", "Sahiwal", "Female", "2024-02-10", "Excellent breed characteristics, high milk potential", "", 1},
}

// Seed populates the reference tables with the program's sample data.
// Inserts are idempotent: rows already present (by their unique keys) are
// left untouched, so re-running the seed command is safe.
func (s *Store) Seed(ctx context.Context) (SeedSummary, error) {
	var summary SeedSummary
	now := time.Now().UTC()

	for _, b := range seedBreeds {
		res, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO cattle_breeds (name, region, milk_yield, strength, lifespan, image_url)
			VALUES (?, ?, ?, ?, ?, ?)`,
			b.name, b.region, b.milkYield, b.strength, b.lifespan, b.imageURL)
		if err != nil {
			return summary, fmt.Errorf("seed breed %s: %w", b.name, err)
		}
		summary.Breeds += affected(res)
	}

	for _, sc := range seedSchemes {
		res, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO government_schemes (name, details, region, type, url)
			VALUES (?, ?, ?, ?, ?)`,
			sc.name, sc.details, sc.region, sc.schemeType, sc.url)
		if err != nil {
			return summary, fmt.Errorf("seed scheme %s: %w", sc.name, err)
		}
		summary.Schemes += affected(res)
	}

	for _, p := range seedEcoPractices {
		res, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO eco_practices (name, description, category, suitability)
			VALUES (?, ?, ?, ?)`,
			p.name, p.description, p.category, p.suitability)
		if err != nil {
			return summary, fmt.Errorf("seed eco practice %s: %w", p.name, err)
		}
		summary.EcoPractices += affected(res)
	}

	for _, t := range seedPriceTrends {
		res, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO price_trends (year, month, breed, region, average_price)
			VALUES (?, ?, ?, ?, ?)`,
			t.year, t.month, t.breed, t.region, t.price)
		if err != nil {
			return summary, fmt.Errorf("seed price trend %d-%d %s: %w", t.year, t.month, t.breed, err)
		}
		summary.PriceTrends += affected(res)
	}

	// The disease table has no unique key; only seed it when empty so the
	// catalog is not duplicated on re-runs.
	var diseaseCount int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM disease_diagnosis`).Scan(&diseaseCount); err != nil {
		return summary, fmt.Errorf("count diseases: %w", err)
	}
	if diseaseCount == 0 {
		for _, d := range seedDiseases {
			_, err := s.db.ExecContext(ctx, `
				INSERT INTO disease_diagnosis (symptoms, detected_disease, suggested_treatment, severity, notes)
				VALUES (?, ?, ?, ?, ?)`,
				d.symptoms, d.disease, d.treatment, d.severity, d.notes)
			if err != nil {
				return summary, fmt.Errorf("seed disease %s: %w", d.disease, err)
			}
			summary.Diseases++
		}
	}

	var pairCount int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breeding_pairs`).Scan(&pairCount); err != nil {
		return summary, fmt.Errorf("count breeding pairs: %w", err)
	}
	if pairCount == 0 {
		for _, p := range seedBreedingPairs {
			ts := now.AddDate(0, 0, -p.ageDays).Format("2006-01-02 15:04:05")
			_, err := s.db.ExecContext(ctx, `
				INSERT INTO breeding_pairs (cattle_1, cattle_2, goal, genetic_score, status, notes, timestamp)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.cattle1, p.cattle2, p.goal, p.score, p.status, p.notes, ts)
			if err != nil {
				return summary, fmt.Errorf("seed breeding pair %s/%s: %w", p.cattle1, p.cattle2, err)
			}
			summary.BreedingPairs++
		}
	}

	for _, o := range seedOffspring {
		ts := now.AddDate(0, 0, -o.ageDays).Format("2006-01-02 15:04:05")
		res, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO offspring_data (parent_1, parent_2, offspring_id, breed, sex, dob,
				predicted_traits, actual_traits, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			o.parent1, o.parent2, o.offspringID, o.breed, o.sex, o.dob, o.predicted, o.actual, ts)
		if err != nil {
			return summary, fmt.Errorf("seed offspring %s: %w", o.offspringID, err)
		}
		summary.Offspring += affected(res)
	}

	s.logger.Info("seed completed",
		zap.Int("breeds", summary.Breeds),
		zap.Int("schemes", summary.Schemes),
		zap.Int("eco_practices", summary.EcoPractices),
		zap.Int("price_trends", summary.PriceTrends),
		zap.Int("diseases", summary.Diseases),
		zap.Int("breeding_pairs", summary.BreedingPairs),
		zap.Int("offspring", summary.Offspring))

	return summary, nil
}

func affected(res interface{ RowsAffected() (int64, error) }) int {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}
