package catalog

// BusinessProblems is the advisor's matching knowledge base. Catalog order is
// the tie-breaker when two entries match the same number of keywords, so new
// entries go at the end.
var BusinessProblems = []BusinessProblem{
	{
		ID:       "low-sales",
		Keywords: []string{"sales", "revenue", "income", "कम बिक्री", "आमदनी", "सेल्स"},
		Category: ProblemSales,
		Problem:  Localized{EN: "Low sales and revenue generation", HI: "कम बिक्री और आमदनी की समस्या"},
		Solution: Localized{
			EN: "Focus on customer retention, improve product quality, and enhance marketing efforts",
			HI: "ग्राहक बनाए रखने पर ध्यान दें, उत्पाद की गुणवत्ता सुधारें, और मार्केटिंग बढ़ाएं",
		},
		ActionSteps: LocalizedList{
			EN: []string{
				"Analyze your top 10 customers and understand why they buy from you",
				"Create customer feedback forms to understand their needs",
				"Offer referral incentives to existing customers",
				"Use WhatsApp Business to stay connected with customers",
				"Create simple promotional offers for slow-moving products",
			},
			HI: []string{
				"अपने टॉप 10 ग्राहकों का विश्लेषण करें और समझें कि वे आपसे क्यों खरीदते हैं",
				"ग्राहकों की जरूरतें समझने के लिए फीडबैक फॉर्म बनाएं",
				"मौजूदा ग्राहकों को रेफरल इंसेंटिव दें",
				"ग्राहकों से जुड़े रहने के लिए WhatsApp Business का उपयोग करें",
				"धीमी चलने वाले उत्पादों के लिए सरल प्रमोशनल ऑफर बनाएं",
			},
		},
	},
	{
		ID:       "cash-flow",
		Keywords: []string{"cash", "money", "payment", "पैसा", "कैश", "भुगतान", "cash flow"},
		Category: ProblemFinance,
		Problem:  Localized{EN: "Cash flow management issues", HI: "कैश फ्लो प्रबंधन की समस्या"},
		Solution: Localized{
			EN: "Implement better payment collection and inventory management",
			HI: "बेहतर भुगतान संग्रह और इन्वेंटरी प्रबंधन लागू करें",
		},
		ActionSteps: LocalizedList{
			EN: []string{
				"Create a daily cash flow tracker in Excel or notebook",
				"Follow up on pending payments weekly",
				"Offer small discounts for advance payments",
				"Reduce inventory of slow-moving items",
				"Negotiate extended payment terms with suppliers",
			},
			HI: []string{
				"Excel या नोटबुक में दैनिक कैश फ्लो ट्रैकर बनाएं",
				"लंबित भुगतान पर साप्ताहिक फॉलो-अप करें",
				"अग्रिम भुगतान के लिए छोटी छूट दें",
				"धीमी चलने वाली वस्तुओं का स्टॉक कम करें",
				"आपूर्तिकर्ताओं के साथ विस्तारित भुगतान शर्तों पर बातचीत करें",
			},
		},
	},
	{
		ID:       "marketing",
		Keywords: []string{"marketing", "promotion", "advertising", "मार्केटिंग", "प्रचार", "विज्ञापन"},
		Category: ProblemMarketing,
		Problem:  Localized{EN: "Need better marketing and customer reach", HI: "बेहतर मार्केटिंग और ग्राहक पहुंच की जरूरत"},
		Solution: Localized{
			EN: "Use low-cost digital marketing and local networking",
			HI: "कम लागत वाली डिजिटल मार्केटिंग और स्थानीय नेटवर्किंग का उपयोग करें",
		},
		ActionSteps: LocalizedList{
			EN: []string{
				"Create Google My Business profile for free local visibility",
				"Use WhatsApp Status to showcase products daily",
				"Join local business WhatsApp groups",
				"Partner with complementary businesses for cross-promotion",
				"Create simple flyers for door-to-door distribution",
			},
			HI: []string{
				"मुफ्त स्थानीय दृश्यता के लिए Google My Business प्रोफाइल बनाएं",
				"दैनिक उत्पादों को दिखाने के लिए WhatsApp Status का उपयोग करें",
				"स्थानीय व्यापारिक WhatsApp समूहों में शामिल हों",
				"क्रॉस-प्रमोशन के लिए पूरक व्यवसायों के साथ साझेदारी करें",
				"घर-घर वितरण के लिए सरल फ्लायर बनाएं",
			},
		},
	},
	{
		ID:       "competition",
		Keywords: []string{"competition", "competitor", "market share", "प्रतिस्पर्धा", "प्रतियोगी"},
		Category: ProblemGeneral,
		Problem:  Localized{EN: "Dealing with strong competition", HI: "कड़ी प्रतिस्पर्धा से निपटना"},
		Solution: Localized{
			EN: "Focus on unique value proposition and customer service",
			HI: "अनोखे मूल्य प्रस्ताव और ग्राहक सेवा पर ध्यान दें",
		},
		ActionSteps: LocalizedList{
			EN: []string{
				"List 3 things that make your business different from competitors",
				"Improve customer service response time",
				"Offer personalized service that big competitors cannot",
				"Focus on a specific niche market",
				"Build strong relationships with your regular customers",
			},
			HI: []string{
				"3 चीजें सूचीबद्ध करें जो आपके व्यवसाय को प्रतियोगियों से अलग बनाती हैं",
				"ग्राहक सेवा की प्रतिक्रिया समय में सुधार करें",
				"व्यक्तिगत सेवा प्रदान करें जो बड़े प्रतियोगी नहीं कर सकते",
				"एक विशिष्ट निच बाजार पर ध्यान दें",
				"अपने नियमित ग्राहकों के साथ मजबूत रिश्ते बनाएं",
			},
		},
	},
	{
		ID:       "team-management",
		Keywords: []string{"employee", "staff", "team", "कर्मचारी", "टीम", "स्टाफ"},
		Category: ProblemHR,
		Problem:  Localized{EN: "Team management and employee motivation", HI: "टीम प्रबंधन और कर्मचारी प्रेरणा"},
		Solution: Localized{
			EN: "Implement clear communication and recognition systems",
			HI: "स्पष्ट संचार और पहचान प्रणाली लागू करें",
		},
		ActionSteps: LocalizedList{
			EN: []string{
				"Hold weekly 15-minute team meetings",
				"Recognize good performance publicly",
				"Set clear daily and weekly targets",
				"Create a suggestion box for employee ideas",
				"Provide small incentives for achieving targets",
			},
			HI: []string{
				"साप्ताहिक 15 मिनट की टीम मीटिंग करें",
				"अच्छे प्रदर्शन को सार्वजनिक रूप से पहचानें",
				"स्पष्ट दैनिक और साप्ताहिक लक्ष्य निर्धारित करें",
				"कर्मचारी विचारों के लिए सुझाव बॉक्स बनाएं",
				"लक्ष्य प्राप्त करने के लिए छोटे प्रोत्साहन प्रदान करें",
			},
		},
	},
	{
		ID:       "operations",
		Keywords: []string{"process", "efficiency", "operations", "प्रक्रिया", "दक्षता", "संचालन"},
		Category: ProblemOperations,
		Problem:  Localized{EN: "Operational efficiency and process improvement", HI: "परिचालन दक्षता और प्रक्रिया सुधार"},
		Solution: Localized{
			EN: "Streamline processes and eliminate waste",
			HI: "प्रक्रियाओं को सुव्यवस्थित करें और बर्बादी को खत्म करें",
		},
		ActionSteps: LocalizedList{
			EN: []string{
				"Map out your current business processes on paper",
				"Identify 3 biggest time-wasters in daily operations",
				"Create standard operating procedures for repetitive tasks",
				"Use mobile apps for inventory tracking",
				"Implement 5S workplace organization method",
			},
			HI: []string{
				"कागज पर अपनी वर्तमान व्यापारिक प्रक्रियाओं का नक्शा बनाएं",
				"दैनिक संचालन में 3 सबसे बड़े समय बर्बाद करने वालों की पहचान करें",
				"दोहराए जाने वाले कार्यों के लिए मानक संचालन प्रक्रियाएं बनाएं",
				"इन्वेंटरी ट्रैकिंग के लिए मोबाइल ऐप्स का उपयोग करें",
				"5S कार्यक्षेत्र संगठन पद्धति लागू करें",
			},
		},
	},
}

// ConversationFlows produce clarifying questions when no problem matched.
var ConversationFlows = []ConversationFlow{
	{
		ID:      "business-assessment",
		Trigger: []string{"help", "problem", "issue", "समस्या", "मदद"},
		Questions: LocalizedList{
			EN: []string{
				"What is the main challenge your business is facing right now?",
				"How long have you been experiencing this issue?",
				"What have you already tried to solve this problem?",
			},
			HI: []string{
				"अभी आपके व्यवसाय की मुख्य चुनौती क्या है?",
				"आप कितने समय से इस समस्या का सामना कर रहे हैं?",
				"इस समस्या को हल करने के लिए आपने क्या कोशिश की है?",
			},
		},
		FollowUp: []ProblemCategory{ProblemSales, ProblemMarketing, ProblemOperations, ProblemFinance, ProblemHR},
	},
	{
		ID:      "growth-planning",
		Trigger: []string{"grow", "expand", "plan", "बढ़ना", "विस्तार", "योजना"},
		Questions: LocalizedList{
			EN: []string{
				"What are your business goals for the next 6 months?",
				"What resources do you have available for growth?",
				"What is your current monthly revenue range?",
			},
			HI: []string{
				"अगले 6 महीनों के लिए आपके व्यावसायिक लक्ष्य क्या हैं?",
				"विकास के लिए आपके पास कौन से संसाधन उपलब्ध हैं?",
				"आपकी वर्तमान मासिक आय की सीमा क्या है?",
			},
		},
		FollowUp: []ProblemCategory{ProblemMarketing, ProblemOperations, ProblemFinance},
	},
}

// QuickSuggestions are static canned prompts offered by the chat UI.
var QuickSuggestions = LocalizedList{
	EN: []string{
		"Create a 30-day action plan",
		"Improve cash flow",
		"Boost sales with low budget",
		"Reduce operational costs",
		"Better customer retention",
		"Digital marketing strategy",
	},
	HI: []string{
		"30 दिनों की एक्शन प्लान बनाएं",
		"कैश फ्लो बेहतर करें",
		"कम बजट में सेल्स बढ़ाएं",
		"परिचालन लागत कम करें",
		"बेहतर ग्राहक बनाए रखना",
		"डिजिटल मार्केटिंग रणनीति",
	},
}
