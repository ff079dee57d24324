package catalog

// Startup-planning reference data served read-only to the planning screens.

// StartupBusinessModels maps an industry id to the business models suggested
// for it. Industries without an entry simply have no suggestions yet.
var StartupBusinessModels = map[string][]BusinessModel{
	"retail": {
		{
			ID:              "physical-store",
			Name:            Localized{EN: "Physical Store", HI: "भौतिक दुकान"},
			Description:     Localized{EN: "Traditional brick-and-mortar retail store serving local customers", HI: "स्थानीय ग्राहकों की सेवा करने वाली पारंपरिक भौतिक दुकान"},
			Examples:        []string{"Grocery store", "Clothing store", "Electronics shop"},
			ProfitModel:     []string{"Product markup", "Volume sales", "Customer loyalty"},
			KeyActivities:   []string{"Inventory management", "Customer service", "Store operations"},
			TargetCustomers: "Local community, walk-in customers",
		},
		{
			ID:              "online-store",
			Name:            Localized{EN: "Online Store", HI: "ऑनलाइन स्टोर"},
			Description:     Localized{EN: "E-commerce platform selling products directly to consumers online", HI: "उपभोक्ताओं को सीधे ऑनलाइन उत्पाद बेचने वाला ई-कॉमर्स प्लेटफॉर्म"},
			Examples:        []string{"Amazon seller", "Shopify store", "Social commerce"},
			ProfitModel:     []string{"Product margins", "Shipping fees", "Digital marketing"},
			KeyActivities:   []string{"Digital marketing", "Order fulfillment", "Customer support"},
			TargetCustomers: "Online shoppers, specific niches",
		},
	},
	"manufacturing": {
		{
			ID:              "b2b-supply",
			Name:            Localized{EN: "B2B Manufacturing", HI: "बी2बी निर्माण"},
			Description:     Localized{EN: "Manufacturing products for other businesses and retailers", HI: "अन्य व्यवसायों और खुदरा विक्रेताओं के लिए उत्पाद निर्माण"},
			Examples:        []string{"Component supplier", "Private label manufacturing", "Industrial parts"},
			ProfitModel:     []string{"Bulk orders", "Long-term contracts", "Economies of scale"},
			KeyActivities:   []string{"Production planning", "Quality control", "B2B sales"},
			TargetCustomers: "Retailers, distributors, other manufacturers",
		},
	},
	"food-beverages": {
		{
			ID:              "cloud-kitchen",
			Name:            Localized{EN: "Cloud Kitchen", HI: "क्लाउड किचन"},
			Description:     Localized{EN: "Delivery-only restaurant without dine-in facility", HI: "बिना डाइन-इन सुविधा के केवल डिलीवरी रेस्टोरेंट"},
			Examples:        []string{"Swiggy kitchen", "Multi-brand kitchen", "Ghost restaurant"},
			ProfitModel:     []string{"Food delivery", "Multiple brands", "Lower overhead"},
			KeyActivities:   []string{"Food preparation", "Order management", "Delivery coordination"},
			TargetCustomers: "Urban customers, office workers, families",
		},
	},
}

// StartupRevenueModels is the industry-independent revenue model list.
var StartupRevenueModels = []RevenueModel{
	{
		ID:            "product-sales",
		Name:          Localized{EN: "Product Sales", HI: "उत्पाद बिक्री"},
		Description:   Localized{EN: "Direct sale of physical or digital products", HI: "भौतिक या डिजिटल उत्पादों की प्रत्यक्ष बिक्री"},
		Advantages:    []string{"Simple to understand", "Immediate revenue", "Scalable"},
		Disadvantages: []string{"Inventory management", "Seasonal fluctuations", "Competition"},
		Examples:      []string{"Retail stores", "Manufacturing", "E-commerce"},
	},
	{
		ID:            "subscription",
		Name:          Localized{EN: "Subscription Model", HI: "सब्स्क्रिप्शन मॉडल"},
		Description:   Localized{EN: "Recurring revenue from regular payments", HI: "नियमित भुगतान से आवर्तक आय"},
		Advantages:    []string{"Predictable revenue", "Customer retention", "Steady cash flow"},
		Disadvantages: []string{"Customer acquisition cost", "Churn management", "Initial scaling"},
		Examples:      []string{"Netflix", "Gym memberships", "Software as a Service"},
	},
	{
		ID:            "commission",
		Name:          Localized{EN: "Commission/Marketplace", HI: "कमीशन/मार्केटप्लेस"},
		Description:   Localized{EN: "Earning percentage from transactions between buyers and sellers", HI: "खरीदार और विक्रेता के बीच लेनदेन से प्रतिशत कमाई"},
		Advantages:    []string{"No inventory", "Scalable", "Network effects"},
		Disadvantages: []string{"Trust building", "Platform dependency", "High competition"},
		Examples:      []string{"Amazon marketplace", "Uber", "Real estate brokers"},
	},
}
