package content

import "healthquiz/internal/domain"

// Topics returns the authored health-education library.
func Topics() []domain.Topic {
	return []domain.Topic{
		{
			ID:       "diabetes",
			Title:    "Diabetes Mellitus",
			Category: domain.CategoryMetabolic,
			Overview: "Chronic condition affecting blood glucose regulation. Type 1 is autoimmune, Type 2 is lifestyle-related.",
			Sections: []domain.TopicSection{
				{Heading: "Types", Items: []string{"Type 1: Autoimmune condition", "Type 2: Most common", "Gestational: During pregnancy"}},
				{Heading: "Symptoms", Items: []string{"Increased thirst", "Frequent urination", "Fatigue", "Blurred vision", "Slow wound healing"}},
				{Heading: "Management", Items: []string{"Regular exercise (150 min/week)", "Healthy diet (low glycemic)", "Weight management", "Medication", "Regular monitoring"}},
			},
			Stats: "Affects 1 in 10 adults; 463 million people worldwide",
		},
		{
			ID:       "cardiovascular-health",
			Title:    "Cardiovascular Health & Disease Prevention",
			Category: domain.CategoryCardiovascular,
			Overview: "Cardiovascular disease is the leading cause of death worldwide. Prevention is key.",
			Sections: []domain.TopicSection{
				{Heading: "Risk factors", Items: []string{"High blood pressure", "High cholesterol", "Smoking", "Diabetes", "Obesity", "Physical inactivity", "Family history"}},
				{Heading: "Symptoms", Items: []string{"Chest pain", "Shortness of breath", "Irregular heartbeat", "Fatigue", "Dizziness"}},
				{Heading: "Prevention", Items: []string{"Regular exercise (150min/week)", "Mediterranean diet", "Manage stress", "Quit smoking", "Control blood pressure", "Manage weight"}},
			},
			Stats: "1 in 5 deaths caused by heart disease; 1 death every 34 seconds",
		},
		{
			ID:       "hypertension",
			Title:    "Hypertension (High Blood Pressure)",
			Category: domain.CategoryCardiovascular,
			Overview: "Persistent elevated blood pressure (140/90 mmHg or above) increases heart disease and stroke risk.",
			Sections: []domain.TopicSection{
				{Heading: "Blood pressure ranges", Items: []string{"Normal: <120/80 mmHg", "Elevated: 120-129/<80 mmHg", "Stage 1: 130-139/80-89 mmHg", "Stage 2: 140/90 mmHg or above"}},
				{Heading: "Complications", Items: []string{"Heart disease", "Stroke", "Kidney damage", "Vision problems"}},
				{Heading: "Management", Items: []string{"Reduce sodium (<2,300mg/day)", "Regular exercise", "Maintain healthy weight", "DASH diet", "Limit alcohol", "Manage stress", "Medication if needed"}},
			},
			Stats: "Affects 1.13 billion people; Leading cause of preventable deaths",
		},
		{
			ID:       "respiratory-health",
			Title:    "Respiratory Health & Lung Disease",
			Category: domain.CategoryRespiratory,
			Overview: "Chronic respiratory diseases affect millions worldwide. Prevention and early detection are critical.",
			Sections: []domain.TopicSection{
				{Heading: "Conditions", Items: []string{"COPD: Chronic obstructive pulmonary disease", "Asthma: Airway inflammation", "Bronchitis: Airway inflammation", "Emphysema: Lung tissue damage"}},
				{Heading: "Symptoms", Items: []string{"Chronic cough", "Shortness of breath", "Chest tightness", "Wheezing", "Mucus production"}},
				{Heading: "Prevention", Items: []string{"Don't smoke", "Avoid secondhand smoke", "Avoid air pollution", "Regular exercise", "Get flu/pneumonia vaccines"}},
			},
			Stats: "6.2M adults with chronic bronchitis; 3rd leading cause of death",
		},
		{
			ID:       "cancer-prevention",
			Title:    "Cancer Prevention & Screening",
			Category: domain.CategoryCancerPrevention,
			Overview: "Cancer is the 2nd leading cause of death. Prevention and early detection save lives.",
			Sections: []domain.TopicSection{
				{Heading: "Prevention", Items: []string{"Avoid tobacco and secondhand smoke", "Limit alcohol", "Sun protection (SPF 30+)", "Healthy weight", "Regular exercise", "Healthy diet", "Regular screening"}},
				{Heading: "Screening", Items: []string{"Mammograms (women 40+)", "PSA tests (men 50+)", "Colonoscopies (adults 45+)", "Pap smears (women 21+)", "Regular skin checks"}},
			},
			Stats: "1 in 3 Americans diagnosed with cancer; 80% preventable with lifestyle changes",
		},
		{
			ID:       "bone-health",
			Title:    "Bone Health & Osteoporosis Prevention",
			Category: domain.CategoryBoneJoint,
			Overview: "Strong bones are essential for mobility and independence throughout life.",
			Sections: []domain.TopicSection{
				{Heading: "Risk factors", Items: []string{"Age", "Gender (women more at risk)", "Family history", "Low calcium/vitamin D", "Sedentary lifestyle", "Smoking"}},
				{Heading: "Prevention", Items: []string{"Adequate calcium (1000-1200mg/day)", "Vitamin D (600-800 IU/day)", "Weight-bearing exercise", "Strength training", "Avoid smoking", "Regular screening (women 65+)"}},
				{Heading: "Calcium sources", Items: []string{"Dairy products", "Leafy greens", "Fish with bones", "Fortified foods"}},
			},
			Stats: "1 in 3 people over 50 have osteoporosis; Preventable in 80% of cases",
		},
		{
			ID:       "mental-health",
			Title:    "Mental Health & Wellness",
			Category: domain.CategoryMentalHealth,
			Overview: "Psychological and emotional well-being crucial for overall health.",
			Sections: []domain.TopicSection{
				{Heading: "Conditions", Items: []string{"Depression: Persistent low mood", "Anxiety: Excessive worry", "Stress: Response to demands", "Burnout: Work exhaustion"}},
				{Heading: "Management", Items: []string{"Professional therapy", "Exercise (30min, 5x/week)", "Meditation (10min/day)", "Social connections", "Sleep 7-9hrs"}},
				{Heading: "Crisis support", Items: []string{"National Crisis Hotline: 988"}},
			},
			Stats: "1 in 5 adults experience mental illness yearly; 50% begins by age 14; 80% treatable with help",
		},
		{
			ID:       "immune-health",
			Title:    "Immune System Health & Strength",
			Category: domain.CategoryImmunity,
			Overview: "A strong immune system protects against infections and diseases.",
			Sections: []domain.TopicSection{
				{Heading: "Immune boosters", Items: []string{"Sleep: 7-9 hours nightly", "Exercise: 150 min/week moderate activity", "Nutrition: Fruits, veggies, proteins", "Stress management", "Hydration: 2-3 liters water daily", "Hand washing"}},
				{Heading: "Key nutrients", Items: []string{"Vitamin C: Citrus, berries, peppers", "Vitamin D: Sunlight, fatty fish", "Zinc: Nuts, seeds, shellfish", "Probiotics: Yogurt, fermented foods"}},
			},
			Stats: "Lifestyle changes improve immune function by 30-50%",
		},
		{
			ID:       "skin-health",
			Title:    "Skin Health & Dermatology",
			Category: domain.CategorySkin,
			Overview: "Healthy skin is a reflection of overall health and requires proper care.",
			Sections: []domain.TopicSection{
				{Heading: "Conditions", Items: []string{"Acne: Blocked pores, bacteria", "Eczema: Chronic inflammation", "Psoriasis: Accelerated cell growth", "Skin cancer: Melanoma, carcinoma"}},
				{Heading: "Sun protection", Items: []string{"SPF 30+ daily", "Reapply every 2 hours", "Avoid sun 10am-4pm", "Wear protective clothing", "Check skin regularly"}},
			},
			Stats: "1 in 5 Americans get skin cancer; 90% preventable with sun protection",
		},
		{
			ID:       "digestive-health",
			Title:    "Digestive Health & Gut Wellness",
			Category: domain.CategoryDigestive,
			Overview: "Healthy digestion is crucial for nutrient absorption and overall wellness.",
			Sections: []domain.TopicSection{
				{Heading: "Common issues", Items: []string{"IBS: Irritable Bowel Syndrome", "GERD: Acid reflux", "Celiac disease: Gluten sensitivity", "Crohn's disease: Inflammatory bowel"}},
				{Heading: "Gut health tips", Items: []string{"Eat high-fiber foods", "Stay hydrated", "Eat fermented foods (probiotics)", "Reduce processed foods", "Exercise regularly", "Manage stress"}},
			},
			Stats: "70% of immune system in gut; Healthy microbiome prevents disease",
		},
		{
			ID:       "exercise-fitness",
			Title:    "Exercise & Physical Fitness",
			Category: domain.CategoryFitness,
			Overview: "Regular physical activity is one of the most important health behaviors.",
			Sections: []domain.TopicSection{
				{Heading: "Exercise types", Items: []string{"Cardio: 150 min/week moderate intensity", "Strength: 2-3 sessions/week", "Flexibility: Daily stretching", "Balance: Especially as we age"}},
				{Heading: "Health benefits", Items: []string{"Reduces heart disease risk by 35%", "Prevents diabetes by 40%", "Improves mental health", "Strengthens bones and muscles", "Improves sleep quality"}},
				{Heading: "Getting started", Items: []string{"Start with 10 minutes daily", "Choose activities you enjoy", "Progress gradually", "Schedule workouts like appointments"}},
			},
			Stats: "Regular exercise adds 7-10 years to lifespan",
		},
	}
}
