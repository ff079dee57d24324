package catalog

// BusinessFunctions is the read-only business-function catalog.
var BusinessFunctions = []Category{
	{
		ID:   "sales",
		Name: Localized{EN: "Sales", HI: "बिक्री"},
		Icon: "📈",
		Questions: []Question{
			{ID: "s1", Text: Localized{EN: "Do you have a sales target for each month?", HI: "क्या आपका हर महीने का बिक्री लक्ष्य है?"}, Type: YesNo, Weight: 10},
			{ID: "s2", Text: Localized{EN: "Do you track conversion rate?", HI: "क्या आप कन्वर्जन रेट को ट्रैक करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "s3", Text: Localized{EN: "Do you follow up with potential customers?", HI: "क्या आप संभावित ग्राहकों से फॉलो अप करते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "s4", Text: Localized{EN: "Do you offer discounts or promotions?", HI: "क्या आप छूट या प्रमोशन देते हैं?"}, Type: YesNo, Weight: 6},
			{ID: "s5", Text: Localized{EN: "Do you know your best-selling products?", HI: "क्या आप अपने सबसे ज्यादा बिकने वाले प्रोडक्ट्स को जानते हैं?"}, Type: YesNo, Weight: 7},
		},
	},
	{
		ID:   "marketing",
		Name: Localized{EN: "Marketing", HI: "मार्केटिंग"},
		Icon: "📢",
		Questions: []Question{
			{ID: "mk1", Text: Localized{EN: "Do you use social media to promote your products?", HI: "क्या आप अपने प्रोडक्ट्स को बढ़ावा देने के लिए सोशल मीडिया का इस्तेमाल करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "mk2", Text: Localized{EN: "Do you have a budget for marketing?", HI: "क्या आपका मार्केटिंग के लिए बजट है?"}, Type: YesNo, Weight: 7},
			{ID: "mk3", Text: Localized{EN: "Do you know your target customers?", HI: "क्या आप अपने टारगेट कस्टमर्स को जानते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "mk4", Text: Localized{EN: "Do you collect customer reviews?", HI: "क्या आप कस्टमर रिव्यू लेते हैं?"}, Type: YesNo, Weight: 6},
			{ID: "mk5", Text: Localized{EN: "Do you track which marketing brings most customers?", HI: "क्या आप ट्रैक करते हैं कि कौन सी मार्केटिंग से सबसे ज्यादा कस्टमर आते हैं?"}, Type: YesNo, Weight: 8},
		},
	},
	{
		ID:   "finance",
		Name: Localized{EN: "Finance", HI: "वित्त"},
		Icon: "💰",
		Questions: []Question{
			{ID: "fin1", Text: Localized{EN: "Do you maintain proper accounting records?", HI: "क्या आप सही तरीके से हिसाब-किताब रखते हैं?"}, Type: YesNo, Weight: 10},
			{ID: "fin2", Text: Localized{EN: "Do you know your monthly profit and loss?", HI: "क्या आप अपना मासिक लाभ और हानि जानते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "fin3", Text: Localized{EN: "Do you pay taxes on time?", HI: "क्या आप समय पर टैक्स देते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "fin4", Text: Localized{EN: "Do you have separate business and personal accounts?", HI: "क्या आपके अलग बिजनेस और व्यक्तिगत खाते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "fin5", Text: Localized{EN: "Do you plan for future investments?", HI: "क्या आप भविष्य के निवेश की योजना बनाते हैं?"}, Type: YesNo, Weight: 6},
		},
	},
}
