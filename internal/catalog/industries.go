package catalog

// Industries is the read-only industry catalog. Order matters: it is the
// order the front end lists them and the order recommendations iterate.
var Industries = []Category{
	{
		ID:   "retail",
		Name: Localized{EN: "Retail Shop", HI: "खुदरा दुकान"},
		Icon: "🏪",
		Questions: []Question{
			{ID: "r1", Text: Localized{EN: "Do you track your daily sales and stock?", HI: "क्या आप अपनी दैनिक बिक्री और स्टॉक को ट्रैक करते हैं?"}, Type: YesNo, Weight: 10},
			{ID: "r2", Text: Localized{EN: "Do you have repeat customers?", HI: "क्या आपके पास नियमित ग्राहक हैं?"}, Type: YesNo, Weight: 8},
			{ID: "r3", Text: Localized{EN: "Is your store visible on Google Maps?", HI: "क्या आपकी दुकान Google Maps पर दिखाई देती है?"}, Type: YesNo, Weight: 8},
			{ID: "r4", Text: Localized{EN: "Do you accept digital payments?", HI: "क्या आप डिजिटल भुगतान स्वीकार करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "r5", Text: Localized{EN: "Do you have a system to prevent theft and losses?", HI: "क्या आपके पास चोरी और नुकसान को रोकने का सिस्टम है?"}, Type: YesNo, Weight: 9},
			{ID: "r6", Text: Localized{EN: "Do you maintain records of suppliers and purchases?", HI: "क्या आप सप्लायर और खरीद के रिकॉर्ड रखते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "r7", Text: Localized{EN: "Do you run weekly or monthly offers to boost sales?", HI: "क्या आप बिक्री बढ़ाने के लिए साप्ताहिक या मासिक ऑफर चलाते हैं?"}, Type: YesNo, Weight: 6},
			{ID: "r8", Text: Localized{EN: "Do you track top-selling SKUs and slow movers?", HI: "क्या आप सबसे ज्यादा बिकने वाले और धीमे चलने वाले उत्पादों को ट्रैक करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "r9", Text: Localized{EN: "Do you use a billing/POS system?", HI: "क्या आप बिलिंग/पीओएस सिस्टम का उपयोग करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "r10", Text: Localized{EN: "Do you record and resolve customer complaints?", HI: "क्या आप ग्राहक शिकायतों को रिकॉर्ड करते हैं और उनका समाधान करते हैं?"}, Type: YesNo, Weight: 7},
		},
	},
	{
		ID:   "manufacturing",
		Name: Localized{EN: "Manufacturing", HI: "विनिर्माण"},
		Icon: "🏭",
		Questions: []Question{
			{ID: "m1", Text: Localized{EN: "Do you track production cost per unit?", HI: "क्या आप प्रति यूनिट उत्पादन लागत को ट्रैक करते हैं?"}, Type: YesNo, Weight: 10},
			{ID: "m2", Text: Localized{EN: "Do you have a system to reduce waste?", HI: "क्या आपके पास कचरा कम करने का सिस्टम है?"}, Type: YesNo, Weight: 9},
			{ID: "m3", Text: Localized{EN: "Do you deliver products on time?", HI: "क्या आप समय पर उत्पाद डिलीवर करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "m4", Text: Localized{EN: "Do you check quality before shipping?", HI: "क्या आप शिपिंग से पहले गुणवत्ता की जांच करते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "m5", Text: Localized{EN: "Do you maintain equipment regularly?", HI: "क्या आप नियमित रूप से मशीनों की देखभाल करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "m6", Text: Localized{EN: "Do you have safety protocols for workers?", HI: "क्या आपके पास श्रमिकों के लिए सुरक्षा नियम हैं?"}, Type: YesNo, Weight: 8},
			{ID: "m7", Text: Localized{EN: "Do you track raw material inventory accurately?", HI: "क्या आप कच्चे माल की इन्वेंट्री को सही तरीके से ट्रैक करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "m8", Text: Localized{EN: "Do you follow a production planning schedule?", HI: "क्या आप उत्पादन योजना अनुसूची का पालन करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "m9", Text: Localized{EN: "Do you track supplier lead times and delays?", HI: "क्या आप सप्लायर लीड टाइम और देरी को ट्रैक करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "m10", Text: Localized{EN: "Do you have a backup power/contingency plan?", HI: "क्या आपके पास बैकअप पावर/आकस्मिक योजना है?"}, Type: YesNo, Weight: 6},
		},
	},
	{
		ID:   "food-beverages",
		Name: Localized{EN: "Food & Beverage", HI: "खाद्य और पेय"},
		Icon: "🍽️",
		Questions: []Question{
			{ID: "f1", Text: Localized{EN: "Do you follow food safety standards?", HI: "क्या आप खाद्य सुरक्षा मानकों का पालन करते हैं?"}, Type: YesNo, Weight: 10},
			{ID: "f2", Text: Localized{EN: "Do you track ingredient costs daily?", HI: "क्या आप रोज सामग्री की लागत को ट्रैक करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "f3", Text: Localized{EN: "Do you have a valid food license?", HI: "क्या आपके पास वैध खाद्य लाइसेंस है?"}, Type: YesNo, Weight: 9},
			{ID: "f4", Text: Localized{EN: "Do you collect customer feedback regularly?", HI: "क्या आप नियमित रूप से ग्राहकों की प्रतिक्रिया लेते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "f5", Text: Localized{EN: "Do you manage food waste properly?", HI: "क्या आप खाद्य अपशिष्ट का सही प्रबंधन करते हैं?"}, Type: YesNo, Weight: 6},
			{ID: "f6", Text: Localized{EN: "Do you follow a kitchen hygiene checklist daily?", HI: "क्या आप रोजाना किचन हाइजीन चेकलिस्ट का पालन करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "f7", Text: Localized{EN: "Do you maintain temperature logs for storage?", HI: "क्या आप भंडारण के लिए तापमान लॉग रखते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "f8", Text: Localized{EN: "Do you use standard recipes and portion control?", HI: "क्या आप मानक रेसिपी और पोर्शन कंट्रोल का उपयोग करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "f9", Text: Localized{EN: "Do you check delivery and packaging quality?", HI: "क्या आप डिलीवरी और पैकेजिंग की गुणवत्ता की जांच करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "f10", Text: Localized{EN: "Do you train staff on hygiene and safety?", HI: "क्या आप स्टाफ को हाइजीन और सुरक्षा पर प्रशिक्षण देते हैं?"}, Type: YesNo, Weight: 8},
		},
	},
	{
		ID:   "service",
		Name: Localized{EN: "Service Business", HI: "सेवा व्यवसाय"},
		Icon: "🛠️",
		Questions: []Question{
			{ID: "svc1", Text: Localized{EN: "Do you have written service packages and pricing?", HI: "क्या आपके पास लिखित सेवा पैकेज और कीमतें हैं?"}, Type: YesNo, Weight: 8},
			{ID: "svc2", Text: Localized{EN: "Do you use an appointment or booking system?", HI: "क्या आप अपॉइंटमेंट या बुकिंग सिस्टम का उपयोग करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "svc3", Text: Localized{EN: "Do you collect customer feedback after service?", HI: "क्या आप सेवा के बाद ग्राहक प्रतिक्रिया लेते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "svc4", Text: Localized{EN: "Are service delivery timelines clearly defined?", HI: "क्या सेवा डिलीवरी की समय-सीमाएँ स्पष्ट रूप से परिभाषित हैं?"}, Type: YesNo, Weight: 7},
			{ID: "svc5", Text: Localized{EN: "Do you track repeat clients and referrals?", HI: "क्या आप दोबारा आने वाले क्लाइंट और रेफरल्स को ट्रैक करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "svc6", Text: Localized{EN: "Do you use written contracts/agreements?", HI: "क्या आप लिखित अनुबंध/एग्रीमेंट का उपयोग करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "svc7", Text: Localized{EN: "Do you follow-up with clients after service?", HI: "क्या आप सेवा के बाद ग्राहकों से फॉलो-अप करते हैं?"}, Type: YesNo, Weight: 6},
			{ID: "svc8", Text: Localized{EN: "Do you have a complaints resolution process?", HI: "क्या आपके पास शिकायत समाधान की प्रक्रिया है?"}, Type: YesNo, Weight: 7},
			{ID: "svc9", Text: Localized{EN: "Do you maintain a digital presence (website/social)?", HI: "क्या आपकी डिजिटल उपस्थिति (वेबसाइट/सोशल) है?"}, Type: YesNo, Weight: 6},
			{ID: "svc10", Text: Localized{EN: "Do you use a simple CRM to track leads?", HI: "क्या आप लीड ट्रैक करने के लिए सरल सीआरएम का उपयोग करते हैं?"}, Type: YesNo, Weight: 7},
		},
	},
	{
		ID:   "agriculture",
		Name: Localized{EN: "Agriculture & Farming", HI: "कृषि और खेती"},
		Icon: "🌾",
		Questions: []Question{
			{ID: "agr1", Text: Localized{EN: "Do you follow a crop planning calendar?", HI: "क्या आप फसल योजना कैलेंडर का पालन करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "agr2", Text: Localized{EN: "Do you conduct regular soil testing?", HI: "क्या आप नियमित मिट्टी परीक्षण करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "agr3", Text: Localized{EN: "Do you have a fixed irrigation schedule?", HI: "क्या आपके पास तय सिंचाई कार्यक्रम है?"}, Type: YesNo, Weight: 7},
			{ID: "agr4", Text: Localized{EN: "Do you record input costs (seeds, fertilizer, labor)?", HI: "क्या आप इनपुट लागत (बीज, खाद, मजदूरी) रिकॉर्ड करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "agr5", Text: Localized{EN: "Do you monitor pests and diseases regularly?", HI: "क्या आप नियमित रूप से कीट और रोगों की निगरानी करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "agr6", Text: Localized{EN: "Do you have proper storage for harvested produce?", HI: "क्या आपके पास कटाई के बाद उपज के लिए उचित भंडारण है?"}, Type: YesNo, Weight: 7},
			{ID: "agr7", Text: Localized{EN: "Do you sell through multiple channels to get better price?", HI: "क्या आप बेहतर कीमत के लिए कई चैनलों से बिक्री करते हैं?"}, Type: YesNo, Weight: 6},
			{ID: "agr8", Text: Localized{EN: "Do you track yield per acre each season?", HI: "क्या आप हर सीजन में प्रति एकड़ उत्पादन को ट्रैक करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "agr9", Text: Localized{EN: "Do you have crop insurance?", HI: "क्या आपके पास फसल बीमा है?"}, Type: YesNo, Weight: 8},
			{ID: "agr10", Text: Localized{EN: "Do you take training on new techniques?", HI: "क्या आप नई तकनीकों पर प्रशिक्षण लेते हैं?"}, Type: YesNo, Weight: 6},
		},
	},
	{
		ID:   "construction-realestate",
		Name: Localized{EN: "Construction & Real Estate", HI: "निर्माण और रियल एस्टेट"},
		Icon: "🏗️",
		Questions: []Question{
			{ID: "con1", Text: Localized{EN: "Do you maintain project timelines for each site?", HI: "क्या आप प्रत्येक साइट के लिए परियोजना समय-रेखाएँ बनाए रखते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "con2", Text: Localized{EN: "Do you track budget and BOQ against actuals?", HI: "क्या आप बजट और बीओक्यू को वास्तविक खर्च के साथ ट्रैक करते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "con3", Text: Localized{EN: "Do workers have safety gear and training?", HI: "क्या श्रमिकों के पास सुरक्षा उपकरण और प्रशिक्षण है?"}, Type: YesNo, Weight: 9},
			{ID: "con4", Text: Localized{EN: "Are permits and approvals in place?", HI: "क्या आवश्यक परमिट और अनुमोदन उपलब्ध हैं?"}, Type: YesNo, Weight: 8},
			{ID: "con5", Text: Localized{EN: "Do you have written vendor/subcontractor contracts?", HI: "क्या आपके पास लिखित विक्रेता/उप-ठेकेदार अनुबंध हैं?"}, Type: YesNo, Weight: 8},
			{ID: "con6", Text: Localized{EN: "Do you track material inventory and wastage?", HI: "क्या आप सामग्री इन्वेंट्री और बर्बादी को ट्रैक करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "con7", Text: Localized{EN: "Do you monitor site progress weekly?", HI: "क्या आप साइट की प्रगति साप्ताहिक रूप से मॉनिटर करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "con8", Text: Localized{EN: "Do you use a quality checklist before handover?", HI: "क्या आप हैंडओवर से पहले गुणवत्ता चेकलिस्ट का उपयोग करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "con9", Text: Localized{EN: "Is client payment schedule linked to milestones?", HI: "क्या ग्राहक भुगतान अनुसूची माइलस्टोन्स से जुड़ी है?"}, Type: YesNo, Weight: 8},
			{ID: "con10", Text: Localized{EN: "Do you have a defects liability/service process?", HI: "क्या आपके पास दोष दायित्व/सेवा प्रक्रिया है?"}, Type: YesNo, Weight: 7},
		},
	},
	{
		ID:   "wholesale",
		Name: Localized{EN: "Wholesale & Distribution", HI: "थोक और वितरण"},
		Icon: "📦",
		Questions: []Question{
			{ID: "wh1", Text: Localized{EN: "Do you maintain SKU-wise inventory?", HI: "क्या आप एसकेयू-वाइज इन्वेंट्री रखते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "wh2", Text: Localized{EN: "Do you plan delivery routes efficiently?", HI: "क्या आप डिलीवरी रूट्स को कुशलता से प्लान करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "wh3", Text: Localized{EN: "Do you have a clear credit policy for buyers?", HI: "क्या आपके पास खरीदारों के लिए स्पष्ट क्रेडिट नीति है?"}, Type: YesNo, Weight: 8},
			{ID: "wh4", Text: Localized{EN: "Do you track outstanding payments regularly?", HI: "क्या आप बकाया भुगतान को नियमित रूप से ट्रैक करते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "wh5", Text: Localized{EN: "Do you maintain minimum stock levels and reorder points?", HI: "क्या आप न्यूनतम स्टॉक स्तर और रीऑर्डर पॉइंट्स बनाए रखते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "wh6", Text: Localized{EN: "Do you maintain cold chain where required?", HI: "जहाँ आवश्यक हो, क्या आप कोल्ड चेन बनाए रखते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "wh7", Text: Localized{EN: "Is your warehouse safe and well-organized?", HI: "क्या आपका वेयरहाउस सुरक्षित और सुव्यवस्थित है?"}, Type: YesNo, Weight: 7},
			{ID: "wh8", Text: Localized{EN: "Do you use barcodes or a labeling system?", HI: "क्या आप बारकोड या लेबलिंग सिस्टम का उपयोग करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "wh9", Text: Localized{EN: "Do you follow a vehicle maintenance schedule?", HI: "क्या आप वाहन रखरखाव कार्यक्रम का पालन करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "wh10", Text: Localized{EN: "Do you have a clear return/exchange policy?", HI: "क्या आपकी स्पष्ट रिटर्न/एक्सचेंज नीति है?"}, Type: YesNo, Weight: 6},
		},
	},
	{
		ID:   "ecommerce",
		Name: Localized{EN: "E-commerce & Online Selling", HI: "ई-कॉमर्स और ऑनलाइन बिक्री"},
		Icon: "🛒",
		Questions: []Question{
			{ID: "ecom1", Text: Localized{EN: "Are products listed with good photos and descriptions?", HI: "क्या उत्पाद अच्छी फोटो और विवरण के साथ सूचीबद्ध हैं?"}, Type: YesNo, Weight: 9},
			{ID: "ecom2", Text: Localized{EN: "Are multiple payment options enabled?", HI: "क्या कई भुगतान विकल्प सक्षम हैं?"}, Type: YesNo, Weight: 8},
			{ID: "ecom3", Text: Localized{EN: "Do customers receive order tracking notifications?", HI: "क्या ग्राहकों को ऑर्डर ट्रैकिंग नोटिफिकेशन मिलते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "ecom4", Text: Localized{EN: "Is your return/refund policy clearly defined?", HI: "क्या आपकी रिटर्न/रिफंड नीति स्पष्ट रूप से परिभाषित है?"}, Type: YesNo, Weight: 8},
			{ID: "ecom5", Text: Localized{EN: "Do you run ads/SEO to drive store traffic?", HI: "क्या आप स्टोर ट्रैफिक बढ़ाने के लिए विज्ञापन/SEO चलाते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "ecom6", Text: Localized{EN: "Do you measure conversion rate and cart abandonment?", HI: "क्या आप कन्वर्जन रेट और कार्ट परित्याग मापते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "ecom7", Text: Localized{EN: "Do you reconcile marketplace settlements on time?", HI: "क्या आप समय पर मार्केटप्लेस सेटलमेंट्स का मिलान करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "ecom8", Text: Localized{EN: "Is inventory synced across all sales channels?", HI: "क्या सभी बिक्री चैनलों में इन्वेंट्री सिंक है?"}, Type: YesNo, Weight: 8},
			{ID: "ecom9", Text: Localized{EN: "Do you provide customer support with SLAs?", HI: "क्या आप एसएलए के साथ ग्राहक सहायता प्रदान करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "ecom10", Text: Localized{EN: "Do you collect and respond to product reviews?", HI: "क्या आप उत्पाद समीक्षाएँ एकत्र करते हैं और उनका जवाब देते हैं?"}, Type: YesNo, Weight: 6},
		},
	},
	{
		ID:   "transport-logistics",
		Name: Localized{EN: "Transport & Logistics", HI: "परिवहन और लॉजिस्टिक्स"},
		Icon: "🚚",
		Questions: []Question{
			{ID: "trans1", Text: Localized{EN: "Do you use GPS tracking for vehicles?", HI: "क्या आप वाहनों के लिए जीपीएस ट्रैकिंग का उपयोग करते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "trans2", Text: Localized{EN: "Do you plan trips and routes efficiently?", HI: "क्या आप यात्राओं और मार्गों की कुशलता से योजना बनाते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "trans3", Text: Localized{EN: "Are driver documents and compliances up to date?", HI: "क्या ड्राइवर दस्तावेज़ और अनुपालन अद्यतन हैं?"}, Type: YesNo, Weight: 8},
			{ID: "trans4", Text: Localized{EN: "Do you follow a vehicle maintenance schedule?", HI: "क्या आप वाहन रखरखाव अनुसूची का पालन करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "trans5", Text: Localized{EN: "Do you track fuel consumption accurately?", HI: "क्या आप ईंधन खपत को सही तरीके से ट्रैक करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "trans6", Text: Localized{EN: "Do you measure on-time delivery performance?", HI: "क्या आप समय पर डिलीवरी प्रदर्शन को मापते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "trans7", Text: Localized{EN: "Is cargo insured as per requirement?", HI: "क्या कार्गो आवश्यकता अनुसार बीमाकृत है?"}, Type: YesNo, Weight: 8},
			{ID: "trans8", Text: Localized{EN: "Do you collect Proof of Delivery (POD) reliably?", HI: "क्या आप प्रूफ ऑफ डिलीवरी (POD) विश्वसनीय रूप से एकत्र करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "trans9", Text: Localized{EN: "Do you optimize loads to reduce empty runs?", HI: "क्या आप खाली दौड़ कम करने के लिए लोड का अनुकूलन करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "trans10", Text: Localized{EN: "Do you have an emergency/incident response protocol?", HI: "क्या आपके पास आपातकाल/घटना प्रतिक्रिया प्रोटोकॉल है?"}, Type: YesNo, Weight: 7},
		},
	},
	{
		ID:   "health-wellness",
		Name: Localized{EN: "Health & Wellness", HI: "स्वास्थ्य और वेलनेस"},
		Icon: "🏥",
		Questions: []Question{
			{ID: "health1", Text: Localized{EN: "Do you have required certifications and licenses?", HI: "क्या आपके पास आवश्यक प्रमाणपत्र और लाइसेंस हैं?"}, Type: YesNo, Weight: 9},
			{ID: "health2", Text: Localized{EN: "Do you use an appointment management system?", HI: "क्या आप अपॉइंटमेंट प्रबंधन सिस्टम का उपयोग करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "health3", Text: Localized{EN: "Do you maintain patient/client records securely?", HI: "क्या आप मरीज/क्लाइंट रिकॉर्ड सुरक्षित रूप से रखते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "health4", Text: Localized{EN: "Do you follow a hygiene and sanitation checklist?", HI: "क्या आप स्वच्छता और सैनिटेशन चेकलिस्ट का पालन करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "health5", Text: Localized{EN: "Are equipment calibrated and maintained regularly?", HI: "क्या उपकरणों का नियमित रूप से अंशांकन और रखरखाव होता है?"}, Type: YesNo, Weight: 8},
			{ID: "health6", Text: Localized{EN: "Do you use consent forms and a privacy policy?", HI: "क्या आप सहमति फॉर्म और गोपनीयता नीति का उपयोग करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "health7", Text: Localized{EN: "Do you have a follow-up and reminder system?", HI: "क्या आपके पास फॉलो-अप और रिमाइंडर सिस्टम है?"}, Type: YesNo, Weight: 7},
			{ID: "health8", Text: Localized{EN: "Do you track feedback and resolve complaints?", HI: "क्या आप फीडबैक ट्रैक करते हैं और शिकायतों का समाधान करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "health9", Text: Localized{EN: "Do you maintain inventory of medicines/consumables?", HI: "क्या आप दवाइयों/उपभोग्य सामग्रियों की इन्वेंट्री बनाए रखते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "health10", Text: Localized{EN: "Are you prepared for emergencies/first-aid?", HI: "क्या आप आपातकाल/प्राथमिक उपचार के लिए तैयार हैं?"}, Type: YesNo, Weight: 8},
		},
	},
	{
		ID:   "other",
		Name: Localized{EN: "Other", HI: "अन्य"},
		Icon: "💼",
		Questions: []Question{
			{ID: "oth1", Text: Localized{EN: "Do you keep basic accounts for income and expenses?", HI: "क्या आप आय और खर्चों का मूल लेखा रखते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "oth2", Text: Localized{EN: "Do you separate business and personal finances?", HI: "क्या आप व्यवसाय और व्यक्तिगत वित्त को अलग रखते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "oth3", Text: Localized{EN: "Do you maintain records of customers and suppliers?", HI: "क्या आप ग्राहकों और सप्लायर्स के रिकॉर्ड रखते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "oth4", Text: Localized{EN: "Do you use digital payments and invoices?", HI: "क्या आप डिजिटल भुगतान और इनवॉइस का उपयोग करते हैं?"}, Type: YesNo, Weight: 7},
			{ID: "oth5", Text: Localized{EN: "Do you comply with basic taxes and registrations?", HI: "क्या आप बेसिक टैक्स और रजिस्ट्रेशन का पालन करते हैं?"}, Type: YesNo, Weight: 8},
			{ID: "oth6", Text: Localized{EN: "Do you track monthly sales, costs and profit?", HI: "क्या आप मासिक बिक्री, लागत और लाभ को ट्रैक करते हैं?"}, Type: YesNo, Weight: 9},
			{ID: "oth7", Text: Localized{EN: "Do you have basic contracts/agreements where needed?", HI: "जहाँ आवश्यक हो, क्या आपके पास बेसिक कॉन्ट्रैक्ट/एग्रीमेंट हैं?"}, Type: YesNo, Weight: 7},
			{ID: "oth8", Text: Localized{EN: "Do you have a simple marketing plan?", HI: "क्या आपके पास एक सरल मार्केटिंग योजना है?"}, Type: YesNo, Weight: 6},
			{ID: "oth9", Text: Localized{EN: "Do you have a complaint and feedback process?", HI: "क्या आपके पास शिकायत और फीडबैक प्रक्रिया है?"}, Type: YesNo, Weight: 6},
			{ID: "oth10", Text: Localized{EN: "Do you plan for future growth and investments?", HI: "क्या आप भविष्य की वृद्धि और निवेश की योजना बनाते हैं?"}, Type: YesNo, Weight: 7},
		},
	},
}
