package content

import "healthquiz/internal/domain"

// Questions returns the authored question bank. The bank is assembled
// once at process start and never mutated afterwards.
func Questions() []domain.Question {
	return []domain.Question{
		// Metabolic
		{
			ID:           "metabolic-fasting-glucose",
			Category:     domain.CategoryMetabolic,
			Prompt:       "What is the normal fasting blood glucose level?",
			Options:      []string{"Less than 100 mg/dL", "100-125 mg/dL", "More than 125 mg/dL"},
			CorrectIndex: 0,
			Explanation:  "Normal is <100 mg/dL. 100-125 indicates prediabetes. >125 indicates diabetes.",
		},
		{
			ID:           "metabolic-type1-cause",
			Category:     domain.CategoryMetabolic,
			Prompt:       "Type 1 diabetes is primarily caused by:",
			Options:      []string{"Lifestyle factors", "Autoimmune attack on insulin cells", "Poor diet"},
			CorrectIndex: 1,
			Explanation:  "Type 1 is autoimmune - the body attacks insulin-producing pancreatic cells.",
		},
		{
			ID:           "metabolic-common-type",
			Category:     domain.CategoryMetabolic,
			Prompt:       "Which is the most common type of diabetes?",
			Options:      []string{"Type 1", "Type 2", "Gestational"},
			CorrectIndex: 1,
			Explanation:  "Type 2 accounts for 90-95% of all diabetes cases.",
		},
		{
			ID:           "metabolic-exercise-dose",
			Category:     domain.CategoryMetabolic,
			Prompt:       "How much exercise per week is recommended for diabetes management?",
			Options:      []string{"30 minutes total", "150 minutes moderate", "300 minutes"},
			CorrectIndex: 1,
			Explanation:  "150 minutes of moderate-intensity exercise weekly helps manage blood sugar.",
		},
		{
			ID:           "metabolic-produce-servings",
			Category:     domain.CategoryMetabolic,
			Prompt:       "How many servings of fruits and vegetables should you eat daily?",
			Options:      []string{"1-2 servings", "3-4 servings", "5 or more servings"},
			CorrectIndex: 2,
			Explanation:  "Health experts recommend 5 or more servings of fruits and vegetables daily.",
		},

		// Cardiovascular
		{
			ID:           "cardio-leading-death-cause",
			Category:     domain.CategoryCardiovascular,
			Prompt:       "What is the leading cause of death worldwide?",
			Options:      []string{"Cancer", "Cardiovascular disease", "Respiratory disease"},
			CorrectIndex: 1,
			Explanation:  "Cardiovascular disease (heart attack, stroke) is the #1 cause of death globally.",
		},
		{
			ID:           "cardio-stage2-hypertension",
			Category:     domain.CategoryCardiovascular,
			Prompt:       "Which blood pressure reading indicates Stage 2 hypertension?",
			Options:      []string{"120/80", "130/85", "140/90 or higher"},
			CorrectIndex: 2,
			Explanation:  "Stage 2 hypertension starts at 140/90 mmHg and requires treatment.",
		},
		{
			ID:           "cardio-activity-risk-cut",
			Category:     domain.CategoryCardiovascular,
			Prompt:       "How much physical activity reduces heart disease risk?",
			Options:      []string{"10 minutes/week", "75 minutes vigorous/week", "5 hours/week"},
			CorrectIndex: 1,
			Explanation:  "150 min moderate or 75 min vigorous weekly reduces heart disease by 35%.",
		},
		{
			ID:           "cardio-good-cholesterol",
			Category:     domain.CategoryCardiovascular,
			Prompt:       "Which cholesterol type removes cholesterol from the arteries?",
			Options:      []string{"LDL", "HDL", "Triglycerides"},
			CorrectIndex: 1,
			Explanation:  "HDL is the 'good' cholesterol that carries cholesterol away; LDL builds up in arteries.",
		},

		// Respiratory
		{
			ID:           "respiratory-death-rank",
			Category:     domain.CategoryRespiratory,
			Prompt:       "Where does chronic lower respiratory disease rank among causes of death?",
			Options:      []string{"1st", "3rd", "10th"},
			CorrectIndex: 1,
			Explanation:  "Chronic lower respiratory disease is the 3rd leading cause of death.",
		},
		{
			ID:           "respiratory-top-prevention",
			Category:     domain.CategoryRespiratory,
			Prompt:       "What is the single most effective way to protect lung health?",
			Options:      []string{"Taking vitamins", "Not smoking", "Breathing exercises"},
			CorrectIndex: 1,
			Explanation:  "Avoiding tobacco smoke, including secondhand smoke, is the top protection for the lungs.",
		},
		{
			ID:           "respiratory-copd-meaning",
			Category:     domain.CategoryRespiratory,
			Prompt:       "What does COPD stand for?",
			Options:      []string{"Chronic obstructive pulmonary disease", "Congenital pulmonary disorder", "Chronic oxygen pressure deficit"},
			CorrectIndex: 0,
			Explanation:  "COPD is chronic obstructive pulmonary disease, which includes emphysema and chronic bronchitis.",
		},

		// Cancer prevention
		{
			ID:           "cancer-preventable-share",
			Category:     domain.CategoryCancerPrevention,
			Prompt:       "What percentage of cancers are preventable?",
			Options:      []string{"30%", "50%", "80%"},
			CorrectIndex: 2,
			Explanation:  "80% of cancers are preventable through lifestyle changes.",
		},
		{
			ID:           "cancer-non-risk-factor",
			Category:     domain.CategoryCancerPrevention,
			Prompt:       "Which is NOT a major modifiable cancer risk factor?",
			Options:      []string{"Smoking", "Alcohol", "Height"},
			CorrectIndex: 2,
			Explanation:  "Height is not a cancer risk factor. Smoking and alcohol are major risk factors.",
		},
		{
			ID:           "cancer-mammogram-age",
			Category:     domain.CategoryCancerPrevention,
			Prompt:       "At what age should women begin mammogram screening?",
			Options:      []string{"Age 30", "Age 40", "Age 50"},
			CorrectIndex: 1,
			Explanation:  "Women 40+ should discuss mammography with their doctor; regular screening starts at 50.",
		},

		// Bone & joint
		{
			ID:           "bone-calcium-intake",
			Category:     domain.CategoryBoneJoint,
			Prompt:       "What is the recommended daily calcium intake for adults?",
			Options:      []string{"500mg", "800mg", "1000-1200mg"},
			CorrectIndex: 2,
			Explanation:  "Adults need 1000-1200mg calcium daily for bone health.",
		},
		{
			ID:           "bone-calcium-vitamin",
			Category:     domain.CategoryBoneJoint,
			Prompt:       "Which vitamin is crucial for calcium absorption?",
			Options:      []string{"Vitamin A", "Vitamin C", "Vitamin D"},
			CorrectIndex: 2,
			Explanation:  "Vitamin D is essential for calcium absorption in the intestines.",
		},
		{
			ID:           "bone-best-exercise",
			Category:     domain.CategoryBoneJoint,
			Prompt:       "What type of exercise is best for bone health?",
			Options:      []string{"Swimming", "Weight-bearing exercise", "Cycling"},
			CorrectIndex: 1,
			Explanation:  "Weight-bearing exercises (walking, jogging, strength training) build and maintain bone density.",
		},

		// Mental health
		{
			ID:           "mental-illness-prevalence",
			Category:     domain.CategoryMentalHealth,
			Prompt:       "What percentage of adults experience mental illness yearly?",
			Options:      []string{"About 1 in 20", "About 1 in 10", "About 1 in 5"},
			CorrectIndex: 2,
			Explanation:  "About 1 in 5 (20%) of adults experience mental illness yearly. Help is available.",
		},
		{
			ID:           "mental-sleep-hours",
			Category:     domain.CategoryMentalHealth,
			Prompt:       "How many hours of sleep do adults need per night?",
			Options:      []string{"5-6 hours", "7-9 hours", "10-12 hours"},
			CorrectIndex: 1,
			Explanation:  "Adults need 7-9 hours of sleep daily for optimal health and function.",
		},
		{
			ID:           "mental-onset-age",
			Category:     domain.CategoryMentalHealth,
			Prompt:       "By what age does half of all mental illness begin?",
			Options:      []string{"Age 14", "Age 25", "Age 40"},
			CorrectIndex: 0,
			Explanation:  "50% of mental illness begins by age 14, which makes early support important.",
		},

		// Immunity
		{
			ID:           "immunity-gut-share",
			Category:     domain.CategoryImmunity,
			Prompt:       "What percentage of the immune system is in the gut?",
			Options:      []string{"30%", "50%", "70%"},
			CorrectIndex: 2,
			Explanation:  "70% of our immune system is in the gut, making digestive health crucial.",
		},
		{
			ID:           "immunity-sleep-boost",
			Category:     domain.CategoryImmunity,
			Prompt:       "How much sleep boosts immune function?",
			Options:      []string{"5-6 hours", "7-9 hours", "10+ hours"},
			CorrectIndex: 1,
			Explanation:  "7-9 hours of sleep strengthens immune response and disease prevention.",
		},
		{
			ID:           "immunity-key-nutrient",
			Category:     domain.CategoryImmunity,
			Prompt:       "Which nutrient is critical for immune cell production?",
			Options:      []string{"Fat", "Zinc", "Sugar"},
			CorrectIndex: 1,
			Explanation:  "Zinc is essential for immune cell development and function.",
		},
		{
			ID:           "immunity-side-effect-window",
			Category:     domain.CategoryImmunity,
			Prompt:       "When do most vaccine side effects occur?",
			Options:      []string{"Within 15 minutes", "Within 2 weeks", "After 3 months"},
			CorrectIndex: 1,
			Explanation:  "Most vaccine side effects occur within 2 weeks. Serious delayed effects are extremely rare.",
		},

		// Skin
		{
			ID:           "skin-cancer-prevalence",
			Category:     domain.CategorySkin,
			Prompt:       "How many Americans will get skin cancer in their lifetime?",
			Options:      []string{"1 in 50", "1 in 20", "1 in 5"},
			CorrectIndex: 2,
			Explanation:  "1 in 5 Americans get skin cancer, yet 90% of cases are preventable with sun protection.",
		},
		{
			ID:           "skin-spf-minimum",
			Category:     domain.CategorySkin,
			Prompt:       "What minimum SPF is recommended for daily sunscreen use?",
			Options:      []string{"SPF 10", "SPF 30", "SPF 100"},
			CorrectIndex: 1,
			Explanation:  "SPF 30 or higher, reapplied every 2 hours, is the standard recommendation.",
		},
		{
			ID:           "skin-peak-sun-hours",
			Category:     domain.CategorySkin,
			Prompt:       "During which hours is sun exposure most damaging?",
			Options:      []string{"6am-9am", "10am-4pm", "4pm-7pm"},
			CorrectIndex: 1,
			Explanation:  "UV radiation peaks between 10am and 4pm; seek shade and protection in that window.",
		},

		// Digestive
		{
			ID:           "digestive-fiber-sources",
			Category:     domain.CategoryDigestive,
			Prompt:       "Which foods are the best sources of dietary fiber?",
			Options:      []string{"Processed snacks", "Whole grains and legumes", "Dairy products"},
			CorrectIndex: 1,
			Explanation:  "Whole grains, legumes, fruits and vegetables supply the fiber a healthy gut needs.",
		},
		{
			ID:           "digestive-probiotic-foods",
			Category:     domain.CategoryDigestive,
			Prompt:       "Which foods supply probiotics for gut health?",
			Options:      []string{"Fermented foods like yogurt", "Red meat", "White bread"},
			CorrectIndex: 0,
			Explanation:  "Fermented foods such as yogurt, kefir and kimchi feed a healthy gut microbiome.",
		},
		{
			ID:           "digestive-gerd-meaning",
			Category:     domain.CategoryDigestive,
			Prompt:       "What condition does GERD refer to?",
			Options:      []string{"Gluten sensitivity", "Chronic acid reflux", "Inflammatory bowel disease"},
			CorrectIndex: 1,
			Explanation:  "GERD is gastroesophageal reflux disease, a chronic form of acid reflux.",
		},

		// Fitness
		{
			ID:           "fitness-weekly-dose",
			Category:     domain.CategoryFitness,
			Prompt:       "How much moderate-intensity exercise is recommended weekly?",
			Options:      []string{"75 minutes", "150 minutes", "300 minutes"},
			CorrectIndex: 1,
			Explanation:  "150 minutes of moderate-intensity aerobic activity weekly is recommended.",
		},
		{
			ID:           "fitness-depression-cut",
			Category:     domain.CategoryFitness,
			Prompt:       "What does regular exercise reduce depression symptoms by?",
			Options:      []string{"10%", "20%", "30%"},
			CorrectIndex: 2,
			Explanation:  "Regular exercise reduces depression symptoms by approximately 30%.",
		},
		{
			ID:           "fitness-lifespan-gain",
			Category:     domain.CategoryFitness,
			Prompt:       "How many years can regular exercise add to lifespan?",
			Options:      []string{"2-3 years", "5-7 years", "7-10 years"},
			CorrectIndex: 2,
			Explanation:  "Regular physical activity can add 7-10 years to life expectancy.",
		},
	}
}
