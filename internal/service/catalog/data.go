package catalog

import "github.com/pranathi988/Kamadhenu-app/internal/domain/models"

var practiceGuides = []models.PracticeGuide{
	{
		Name:        "Organic Farming",
		Description: "Avoids synthetic fertilizers, pesticides, GMOs. Relies on natural inputs and processes.",
		Benefits: []string{
			"Improves soil health and biodiversity.",
			"Reduces water pollution from chemical runoff.",
			"Produces potentially healthier food (residue-free).",
			"Can fetch premium prices for certified produce.",
		},
		Implementation: []string{
			"Use compost, manure, green manures for fertility.",
			"Employ crop rotation, companion planting, biological pest control.",
			"Source organic seeds/inputs.",
			"Maintain buffer zones from conventional farms.",
			"Certification process required for 'Organic' label (can be complex/costly).",
		},
		Challenges: []string{
			"Potentially lower yields initially",
			"Higher labor input",
			"Weed and pest control can be difficult.",
		},
	},
	{
		Name:        "Crop Rotation",
		Description: "Systematically changing the type of crop grown on a piece of land each season or year.",
		Benefits: []string{
			"Improves soil structure and fertility (e.g., legumes fix nitrogen).",
			"Breaks pest and disease cycles specific to certain crops.",
			"Suppresses weeds by alternating competitive crops.",
			"Distributes nutrient uptake from different soil depths.",
		},
		Implementation: []string{
			"Plan rotation sequences considering crop families (avoid planting related crops consecutively).",
			"Include deep-rooted and shallow-rooted crops.",
			"Incorporate legume cover crops.",
			"Consider market demand and crop suitability.",
		},
		Challenges: []string{
			"Requires careful planning",
			"Market fluctuations for different crops.",
		},
	},
	{
		Name:        "Water Conservation",
		Description: "Using water resources efficiently in agriculture.",
		Benefits: []string{
			"Saves a critical resource, especially in water-scarce regions.",
			"Reduces energy costs for pumping.",
			"Minimizes soil erosion and nutrient leaching.",
			"Can improve crop yields by providing water directly to roots.",
		},
		Implementation: []string{
			"Drip irrigation: delivers water directly to the root zone.",
			"Sprinkler systems: more efficient than flood irrigation.",
			"Rainwater harvesting: collect and store rainwater in ponds or tanks.",
			"Mulching: covering soil (organic or plastic) reduces evaporation.",
			"Laser land leveling: creates uniform slope for efficient surface irrigation.",
			"Contour farming/bunds: slows water runoff on slopes.",
		},
		Challenges: []string{
			"Initial investment cost for systems like drip irrigation",
			"Requires maintenance.",
		},
	},
	{
		Name:        "Integrated Pest Management (IPM)",
		Description: "Holistic approach using multiple tactics to control pests, minimizing reliance on chemical pesticides.",
		Benefits: []string{
			"Reduces pesticide use and environmental contamination.",
			"Protects beneficial insects (pollinators, predators).",
			"Lowers risk of pesticide resistance.",
			"Can be more cost-effective long-term.",
		},
		Implementation: []string{
			"Monitoring: regularly scout fields to identify pests and assess damage levels.",
			"Cultural controls: crop rotation, resistant varieties, sanitation.",
			"Biological controls: introduce or encourage natural enemies (predators, parasitoids).",
			"Physical/mechanical controls: traps, barriers, hand-picking.",
			"Chemical controls: use targeted, least-toxic pesticides only when necessary (based on thresholds).",
		},
		Challenges: []string{
			"Requires knowledge of pest lifecycles and natural enemies",
			"Can be more complex than simple spraying.",
		},
	},
	{
		Name:        "Manure Management",
		Description: "Proper handling, storage, and application of animal manure to utilize nutrients and prevent pollution.",
		Benefits: []string{
			"Recycles valuable nutrients (N, P, K) back to the soil.",
			"Improves soil organic matter and structure.",
			"Reduces reliance on synthetic fertilizers.",
			"Prevents water contamination from runoff.",
			"Potential for biogas generation.",
		},
		Implementation: []string{
			"Collection: regular collection from sheds/pens.",
			"Storage: covered storage (pits or heaps) to prevent nutrient loss and runoff.",
			"Composting: speeds up decomposition, reduces pathogens, stabilizes nutrients.",
			"Application: apply based on soil tests and crop needs, incorporate into soil quickly.",
			"Avoid applying near water bodies or during heavy rain.",
		},
		Challenges: []string{
			"Requires labor and space for handling/storage",
			"Odor management",
			"Pathogen risks if not composted properly.",
		},
	},
	{
		Name:        "Vermicomposting",
		Description: "Using earthworms (like Eisenia fetida) to decompose organic waste into high-quality compost (vermicast).",
		Benefits: []string{
			"Produces nutrient-rich organic fertilizer quickly.",
			"Improves soil aeration, water retention, and microbial activity.",
			"Diverts organic waste from landfills/burning.",
			"Vermicast can suppress some soil-borne diseases.",
		},
		Implementation: []string{
			"Use suitable bins or pits with drainage.",
			"Maintain optimal moisture (~70%) and temperature (15-25 C).",
			"Feed worms appropriate organic matter (cow dung, crop residues, kitchen waste - avoid oily/meat).",
			"Harvest vermicast periodically.",
		},
		Challenges: []string{
			"Requires specific worm species",
			"Sensitive to temperature and moisture extremes",
			"Needs regular management.",
		},
	},
	{
		Name:        "Biogas Production",
		Description: "Anaerobic digestion of organic matter (mainly cow dung) to produce methane gas for fuel and nutrient-rich slurry.",
		Benefits: []string{
			"Provides clean, renewable cooking fuel, reducing reliance on firewood/LPG.",
			"Produces high-quality organic fertilizer (slurry).",
			"Improves sanitation by managing waste.",
			"Reduces greenhouse gas emissions (methane capture).",
		},
		Implementation: []string{
			"Construct a biogas digester (fixed dome or floating drum type).",
			"Feed daily with a mixture of dung and water.",
			"Use the produced gas for cooking/lighting via pipes.",
			"Utilize the slurry as fertilizer after storage.",
		},
		Challenges: []string{
			"Initial construction cost",
			"Requires consistent supply of dung/water",
			"Temperature affects gas production.",
		},
	},
	{
		Name:        "Agroforestry",
		Description: "Integrating trees and shrubs with crops and/or livestock on the same land.",
		Benefits: []string{
			"Diversifies farm income (timber, fruit, fodder).",
			"Improves soil health (nutrient cycling, erosion control).",
			"Enhances biodiversity (habitat for birds, insects).",
			"Provides shade for livestock, acts as windbreak.",
			"Sequesters carbon.",
		},
		Implementation: []string{
			"Choose suitable tree species compatible with crops/livestock.",
			"Design spatial arrangement (alley cropping, boundary planting, silvopasture).",
			"Manage trees (pruning, thinning) to minimize competition with crops.",
		},
		Challenges: []string{
			"Competition for light, water, nutrients between trees and crops",
			"Longer time frame for returns from trees.",
		},
	},
	{
		Name:        "Rotational Grazing",
		Description: "A livestock management strategy that involves dividing pasture into sections and rotating grazing areas to optimize grass growth and soil health.",
		Benefits: []string{
			"Prevents overgrazing and allows vegetation to recover.",
			"Improves soil fertility by evenly distributing manure.",
			"Enhances pasture biodiversity and forage quality.",
			"Reduces erosion and maintains healthy ground cover.",
		},
		Implementation: []string{
			"Divide pasture into multiple paddocks or sections.",
			"Rotate livestock between paddocks based on grass growth and recovery rates.",
			"Provide access to clean water in each grazing area.",
			"Monitor pasture health regularly to adjust grazing schedules.",
		},
		Challenges: []string{
			"Initial setup can be resource-intensive (fences, water systems).",
			"Requires regular monitoring and management of livestock.",
			"May need supplemental feed during pasture recovery periods.",
		},
	},
}

var lifecycleStages = []models.LifecycleStage{
	{
		Name:  "Calf (0-6 months)",
		Focus: "Immunity, Growth Start, Weaning",
		Details: []string{
			"Colostrum: critical! Feed 10% of body weight within 2-4 hours of birth.",
			"Housing: clean, dry, warm, draft-free pen. Individual housing initially recommended.",
			"Feeding: high-quality milk replacer or whole milk. Introduce calf starter feed (18-20% protein) from day 3-4.",
			"Water: fresh, clean water available from day 1.",
			"Health: navel disinfection, monitor for scours & pneumonia. Deworming & initial vaccinations (consult vet).",
			"Weaning: gradual process around 8-10 weeks, based on starter intake (e.g., eating >1 kg/day).",
		},
	},
	{
		Name:  "Heifer (6-24 months)",
		Focus: "Growth, Sexual Maturity, Breeding Preparation",
		Details: []string{
			"Nutrition: balanced ration for steady growth (avoid fattening). Target ~60-65% of mature body weight at first breeding.",
			"Forage: good quality green fodder & hay form the base.",
			"Concentrate: supplement as needed based on forage quality and growth rate (14-16% protein).",
			"Minerals: provide balanced mineral mixture.",
			"Health: regular deworming & booster vaccinations. Monitor for parasites.",
			"Breeding: observe for heat cycles starting around 9-15 months. Breed based on weight & age (typically 15-18 months). Use AI or tested bull.",
		},
	},
	{
		Name:  "Pregnant Cow/Heifer",
		Focus: "Fetal Growth, Udder Development, Calving Preparation",
		Details: []string{
			"Early/mid gestation (months 1-6): maintain good body condition. Nutrition similar to dry cow or late heifer.",
			"Late gestation (months 7-9): nutrient needs increase significantly (esp. protein, energy, calcium, phosphorus) for fetal growth & colostrum production. Provide ~25% extra energy.",
			"Feeding: high-quality forage + appropriate concentrate supplement. Avoid sudden feed changes.",
			"Minerals: crucial! Ensure adequate calcium, phosphorus, selenium, vitamin E.",
			"Health: monitor body condition. Booster vaccinations (e.g., against scours pathogens) 4-6 weeks before calving.",
			"Management: avoid stress. Move to clean, comfortable calving pen 1-2 weeks before expected date.",
		},
	},
	{
		Name:  "Lactating Cow",
		Focus: "Milk Production, Health Maintenance, Re-breeding",
		Details: []string{
			"Nutrition: highest demand! Feed based on milk yield, stage of lactation, and body condition.",
			"Energy & protein: key drivers of milk production. High-quality forages + balanced concentrates (16-18% protein).",
			"Water: crucial! Need 4-5 liters water per liter of milk produced + maintenance needs.",
			"Minerals: especially calcium & phosphorus. Provide free-choice mineral mix.",
			"Milking: hygienic practices (clean udder, hands, equipment). Consistent milking times.",
			"Health: monitor for mastitis (check milk), lameness, metabolic diseases (ketosis, milk fever - esp. early lactation).",
			"Breeding: aim to re-breed within 60-90 days post-calving for optimal calving interval.",
		},
	},
	{
		Name:  "Dry Cow (Non-lactating period)",
		Focus: "Udder Rest & Regeneration, Fetal Growth (late dry), Preparing for Lactation",
		Details: []string{
			"Duration: typically 45-60 days before expected calving date.",
			"Nutrition: lower requirements than lactation. Maintain body condition (score 3.0-3.5). Avoid getting fat.",
			"Feeding: primarily good quality forage. Low or no concentrate initially, increase slightly in the last 2-3 weeks ('transition period').",
			"Minerals: adjust mineral mix, especially calcium (reduce slightly in early dry period, increase pre-calving).",
			"Health: ideal time for treating subclinical mastitis (dry cow therapy - consult vet). Monitor overall health.",
			"Management: separate from milking herd if possible. Provide comfortable housing.",
		},
	},
	{
		Name:  "Bull / Breeding Male",
		Focus: "Maintaining Libido & Fertility, Soundness, Safe Handling",
		Details: []string{
			"Nutrition: balanced diet to maintain good condition (not fat). Requirements vary based on age and breeding activity.",
			"Feeding: good forage + moderate concentrate (12-14% protein). Ensure adequate minerals (zinc, selenium).",
			"Exercise: provide adequate space for movement.",
			"Health: regular checks for lameness, reproductive organ health. Annual breeding soundness exam recommended.",
			"Management: handle with extreme caution (use proper facilities). Monitor breeding activity and libido.",
			"Biosecurity: test for reproductive diseases. Quarantine new arrivals.",
		},
	},
}
