package content

import (
	domain "drugdash/domain/content"
)

var precautions = []domain.Bundle{
	{
		Condition: "Hypertension",
		Image:     "hypertension.png",
		Caption:   "Hypertension Precautions",
		Intro:     []string{"Precautions for Hypertension:"},
		Bullets: []string{
			"Eat a healthy diet. Choose healthy meal and snack options to help you avoid high blood pressure and its complications.",
			"Keep yourself at a healthy weight.",
			"Be physically active.",
			"Do not smoke.",
			"Limit how much alcohol you drink.",
			"Get enough sleep.",
			"Manage stress.",
		},
		LearnMore: "https://www.heart.org/en/health-topics/high-blood-pressure/changes-you-can-make-to-manage-high-blood-pressure",
	},
	{
		Condition: "Diabetes",
		Image:     "diabetes.png",
		Caption:   "Diabetes Precautions",
		Intro:     []string{"Precautions for Diabetes:"},
		Bullets: []string{
			"Choose drinks without added sugar.",
			"Choose higher fibre carbs.",
			"Cut down on red and processed meat.",
			"Eat plenty of fruits and vegetables.",
			"Be sensible with alcohol.",
			"Monitor blood sugar.",
			"Eat balanced meals.",
			"Exercise.",
			"Take prescribed medications.",
		},
		LearnMore: "https://www.diabetes.org/diabetes",
	},
	{
		Condition: "Depression",
		Image:     "depression.png",
		Caption:   "Depression Precautions",
		Intro:     []string{"Precautions for Depression:"},
		Bullets: []string{
			"Seek professional help.",
			"Engage in therapy.",
			"Maintain a healthy lifestyle.",
			"Get enough sleep.",
			"Avoid alcohol and drug use.",
			"Exercise regularly.",
			"Build strong relationships.",
			"Reduce stress.",
		},
		LearnMore: "https://www.nimh.gov/health/topics/depression",
	},
	{
		Condition: "Asthma",
		Image:     "asthma.png",
		Caption:   "Asthma Precautions",
		Intro:     []string{"Precautions for Asthma:"},
		Bullets: []string{
			"Follow your asthma action plan.",
			"Get vaccinated for influenza and pneumonia.",
			"Identify and avoid asthma triggers.",
			"Monitor your breathing.",
			"Identify and treat attacks early.",
			"Take your medication as prescribed.",
			"Pay attention to increasing quick-relief inhaler use.",
		},
		LearnMore: "https://www.cdc.gov/asthma/default.htm",
	},
	{
		Condition: "GERD",
		Image:     "gerd.png",
		Caption:   "GERD Precautions",
		Intro:     []string{"Precautions for GERD:"},
		Bullets: []string{
			"Maintain a healthy weight.",
			"Stop smoking.",
			"Elevate the head of your bed.",
			"Start on your left side.",
			"Don't lie down after a meal.",
			"Eat food slowly and chew thoroughly.",
			"Don't consume foods and drinks that trigger reflux.",
			"Don't wear tight-fitting clothing",
		},
		LearnMore: "https://www.niddk.nih.gov/health-information/digestive-diseases/acid-reflux-ger-gerd",
	},
	{
		Condition: "High Cholesterol",
		Image:     "cholesterol.png",
		Caption:   "High Cholesterol Precautions",
		Intro:     []string{"Precautions for High Cholesterol:"},
		Bullets: []string{
			"Eat a diet that focuses on lean protein, fruits, vegetables and whole grains.",
			"Also limit the amount of saturated and trans fats you eat.",
			"Lose extra weight and keep it off.",
			"If you smoke, ask your care team to help you quit.",
			"Exercise on most days of the week for at least 30 minutes.",
			"Take prescribed medication.",
			"Quit smoking.",
		},
		LearnMore: "https://www.heart.org/en/health-topics/cholesterol",
	},
	{
		Condition: "Infection",
		Image:     "infection.png",
		Caption:   "Infection Precautions",
		Intro:     []string{"Precautions for Infection:"},
		Bullets: []string{
			"Hand hygiene.",
			"Use of personal protective equipment (e.g., gloves, masks, eyewear)",
			"Respiratory hygiene / cough etiquette.",
			"Use hand sanitizer when needed.",
			"Wear a mask in crowded places.",
			"Eat a balanced diet.",
			"Stay hydrated.",
			"Exercise regularly.",
			"Get enough sleep.",
		},
		LearnMore: "https://www.cdc.gov/infections/index.html",
	},
	{
		Condition: "Thyroid Disorder",
		Image:     "thyroid.png",
		Caption:   "Thyroid Precautions",
		Intro:     []string{"Precautions for Thyroid Disorder:"},
		Bullets: []string{
			"Eat a balanced diet.",
			"Avoid processed foods.",
			"Monitor your iodine intake.",
			"Manage stress.",
			"Exercise regularly.",
			"Get sufficient sleep.",
			"Limit environmental toxins.",
			"Take prescribed medication.",
		},
		LearnMore: "https://www.niddk.nih.gov/health-information/endocrine-diseases/thyroid-disease",
	},
	{
		Condition: "Pain",
		Image:     "pain.png",
		Caption:   "Pain Precautions",
		Intro: []string{
			"Precautions for Pain: Manage pain with medications, physical therapy, rest, use heat or cold packs, and practice relaxation techniques.",
		},
		Bullets: []string{
			"Proper Medication Use.",
			"Rest and Relaxation.",
			"Physical Therapy & Exercise.",
			"Maintain a Healthy Diet.",
			"Maintain a healthy weight.",
		},
		LearnMore: "https://www.mayoclinic.org/symptom-checker/pain-in-adults-adults/related-factors/itt-20072044",
	},
	{
		Condition: "Allergies",
		Image:     "allergies.png",
		Caption:   "Allergies Precautions",
		Intro: []string{
			"Precautions for Allergies: Avoid allergens, take prescribed medications, carry an epinephrine auto-injector, monitor symptoms, and inform others about your allergies.",
		},
		Bullets: []string{
			"Avoid your allergens. This is very important but not always easy.",
			"Take your medicines as prescribed.",
			"If you are at risk for anaphylaxis, keep your epinephrine auto-injectors with you at all times.",
			"Keep a diary.",
			"Wear a medical alert bracelet (or necklace).",
			"Know what to do during an allergic reaction.",
		},
		LearnMore: "https://www.cdc.gov/nchs/fastats/allergies.htm",
	},
}

var symptoms = []domain.Bundle{
	{
		Condition: "High Cholesterol",
		Image:     "cholesterol2.jpg",
		Caption:   "High Cholesterol Symptoms",
		Intro: []string{
			"High cholesterol has no symptoms. A blood test is the only way to find out if you have it.",
			"A very few people with High Cholesterol may have:",
		},
		Bullets: []string{
			"Fatty Deposits on Skin.",
			"Unusual Chest Pain.",
			"Shortness of Breath.",
			"Frequent Headaches.",
		},
	},
	{
		Condition: "Diabetes",
		Image:     "diabetes2.jpg",
		Caption:   "Diabetes Symptoms",
		Intro:     []string{"Some of the symptoms of diabetes are:"},
		Bullets: []string{
			"Feeling more thirsty than usual.",
			"Urinating often.",
			"Losing weight without trying.",
			"Presence of ketones in the urine. Ketones are a byproduct of the breakdown of muscle and fat that happens when there's not enough available insulin.",
			"Feeling tired and weak.",
			"Feeling irritable or having other mood changes.",
			"Having blurry vision.",
			"Having slow-healing sores.",
			"Getting a lot of infections, such as gum, skin and vaginal infections.",
		},
	},
	{
		Condition: "Depression",
		Image:     "depression2.jpg",
		Caption:   "Depression Symptoms",
		Intro:     []string{"The symptoms of depression vary from person to person, but they commonly include:"},
		Bullets: []string{
			"sadness",
			"hopelessness",
			"loss of pleasure in activities",
			"irritability",
			"tiredness",
			"appetite changes",
			"thoughts of death or suicide",
		},
	},
	{
		Condition: "Asthma",
		Image:     "asthma2.jpg",
		Caption:   "Asthma Symptoms",
		Intro:     []string{"Asthma signs and symptoms include:"},
		Bullets: []string{
			"Shortness of breath.",
			"Chest tightness or pain.",
			"Wheezing when exhaling, which is a common sign of asthma in children.",
			"Trouble sleeping caused by shortness of breath, coughing or wheezing.",
			"Coughing or wheezing attacks that are worsened by a respiratory virus, such as a cold or the flu.",
		},
	},
	{
		Condition: "GERD",
		Image:     "GERD2.jpg",
		Caption:   "GERD symptoms",
		Intro:     []string{"Common symptoms of GERD include:"},
		Bullets: []string{
			"A burning sensation in the chest, often called heartburn. Heartburn usually happens after eating and might be worse at night or while lying down.",
			"Backwash of food or sour liquid in the throat.",
			"Upper belly or chest pain.",
			"Trouble swallowing, called dysphagia.",
			"Sensation of a lump in the throat.",
		},
	},
	{
		Condition: "Hypertension",
		Image:     "hypertension2.jpeg",
		Caption:   "Hypertension Symptoms",
		Intro: []string{
			"Most people with high blood pressure have no symptoms, even if blood pressure readings reach dangerously high levels. You can have high blood pressure for years without any symptoms.",
			"A few people with high blood pressure may have:",
		},
		Bullets: []string{
			"Headaches",
			"Shortness of breath",
			"Nosebleeds",
			"Dizziness",
			"Weakness",
		},
		Notes: []string{
			"However, these symptoms aren't specific. They usually don't occur until high blood pressure has reached a severe or life-threatening stage.",
		},
	},
	{
		Condition: "Infection",
		Image:     "infection3.jpg",
		Caption:   "Infection Symptoms",
		Intro: []string{
			"Signs and symptoms of a bacterial infection may vary depending on the location of the infection and the type of bacteria that's causing it.",
			"However, some general symptoms of a bacterial infection include:",
		},
		Bullets: []string{
			"fever",
			"feeling tired or fatigued",
			"swollen lymph nodes in the neck, armpits, or groin",
			"headache",
			"nausea or vomiting",
		},
	},
	{
		Condition: "Thyroid Disorder",
		Image:     "thyroid2.jpg",
		Caption:   "Thyroid Symptoms",
		Intro:     []string{"Symptoms and signs of hyperthyroidism:"},
		Bullets: []string{
			"Nervousness, tremor, agitation",
			"Irritability",
			"Poor concentration",
			"Reduced menstrual blood flow in women",
			"Racing heartbeat",
			"Heat intolerance",
			"Changes in bowel habits, such as more frequent bowel movements",
			"Enlargement of the thyroid gland",
			"Skin thinning",
			"Brittle hair",
			"Increase in appetite, feeling hungry",
			"Sweating",
		},
	},
	{
		Condition: "Pain",
		Image:     "pain2.jpg",
		Caption:   "Pain symptoms",
		Intro: []string{
			"Pain can manifest in different ways depending on its cause, location, and severity. Common symptoms of pain include:",
		},
		Bullets: []string{
			"Sharp, stabbing pain",
			"Dull, aching pain",
			"Burning sensation",
			"Stiffness or restricted movement",
			"Swelling or inflammation",
			"Increased sensitivity to touch",
			"Irritability or mood changes",
			"Fatigue or trouble sleeping",
			"Loss of appetite",
		},
	},
	{
		Condition: "Allergies",
		Image:     "allergies2.jpg",
		Caption:   "Allergies symptoms",
		Intro: []string{
			"No matter what you're allergic to, the symptoms can be similar.",
			"Common symptoms of skin allergies include:",
		},
		Bullets: []string{
			"Rash",
			"Itch",
			"Redness",
			"Swelling",
			"Bumps",
			"Flaky skin",
			"Cracked skin",
		},
	},
}
