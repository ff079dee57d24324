package catalog

// Recommendations maps a question id to the advice served when that question
// is answered "no" or rated below 3. Only a subset of questions carry advice;
// ids missing here simply produce nothing.
var Recommendations = map[string]Localized{
	// industry questions
	"r1": {
		EN: "Start tracking daily sales and stock. Use a simple register or mobile app for record keeping.",
		HI: "रोजाना बिक्री और स्टॉक की रिकॉर्डिंग शुरू करें। एक सिंपल रजिस्टर या मोबाइल ऐप का इस्तेमाल करें।",
	},
	"r3": {
		EN: "Register your store on Google My Business for free.",
		HI: "अपनी दुकान को Google My Business पर मुफ्त में रजिस्टर करें।",
	},
	"r4": {
		EN: "Enable UPI and QR-code payments. Customers increasingly expect digital options.",
		HI: "UPI और QR-कोड भुगतान चालू करें। ग्राहक अब डिजिटल विकल्पों की अपेक्षा करते हैं।",
	},
	"m1": {
		EN: "Start tracking production cost per unit. This will help increase profits.",
		HI: "प्रति यूनिट उत्पादन लागत को ट्रैक करना शुरू करें। यह प्रॉफिट बढ़ाने में मदद करेगा।",
	},
	"m4": {
		EN: "Add a simple quality checklist before every shipment to cut returns and complaints.",
		HI: "रिटर्न और शिकायतें कम करने के लिए हर शिपमेंट से पहले एक सरल गुणवत्ता चेकलिस्ट जोड़ें।",
	},
	"f1": {
		EN: "Take food safety training and obtain FSSAI license.",
		HI: "खाद्य सुरक्षा प्रशिक्षण लें और FSSAI लाइसेंस प्राप्त करें।",
	},
	"svc2": {
		EN: "Use a free booking tool or a shared calendar so appointments are never missed.",
		HI: "मुफ्त बुकिंग टूल या साझा कैलेंडर का उपयोग करें ताकि कोई अपॉइंटमेंट छूटे नहीं।",
	},
	"agr4": {
		EN: "Record input costs every season. Knowing cost per acre is the first step to better margins.",
		HI: "हर सीजन में इनपुट लागत रिकॉर्ड करें। प्रति एकड़ लागत जानना बेहतर मुनाफे का पहला कदम है।",
	},
	"wh4": {
		EN: "Review outstanding payments every week and set a clear credit limit per buyer.",
		HI: "हर हफ्ते बकाया भुगतान की समीक्षा करें और प्रत्येक खरीदार के लिए स्पष्ट क्रेडिट सीमा तय करें।",
	},
	"ecom1": {
		EN: "Re-shoot your top listings with clear photos and complete descriptions; it directly lifts conversion.",
		HI: "अपनी टॉप लिस्टिंग की साफ फोटो और पूरे विवरण के साथ दोबारा तैयारी करें; इससे सीधे कन्वर्जन बढ़ता है।",
	},
	"trans4": {
		EN: "Create a vehicle maintenance calendar. Preventive servicing is cheaper than breakdowns.",
		HI: "वाहन रखरखाव कैलेंडर बनाएं। समय पर सर्विसिंग ब्रेकडाउन से सस्ती होती है।",
	},
	"health3": {
		EN: "Move patient/client records to a secure digital system with regular backups.",
		HI: "मरीज/क्लाइंट रिकॉर्ड को नियमित बैकअप वाले सुरक्षित डिजिटल सिस्टम में रखें।",
	},
	"oth1": {
		EN: "Keep a basic income/expense book. Even a simple daily entry habit reveals where money leaks.",
		HI: "आय-खर्च की बेसिक बही रखें। रोजाना की सरल एंट्री से ही पता चलता है कि पैसा कहाँ जा रहा है।",
	},

	// business-function questions
	"s1": {
		EN: "Set monthly sales targets and track them regularly.",
		HI: "हर महीने के लिए बिक्री लक्ष्य निर्धारित करें और उसे ट्रैक करें।",
	},
	"s3": {
		EN: "Keep a follow-up list of interested customers and contact them within 48 hours.",
		HI: "इच्छुक ग्राहकों की फॉलो-अप सूची रखें और 48 घंटे के भीतर संपर्क करें।",
	},
	"mk1": {
		EN: "Create free WhatsApp Business and Instagram accounts. Post 2-3 times per week.",
		HI: "WhatsApp Business और Instagram पर मुफ्त में अकाउंट बनाएं। हफ्ते में 2-3 बार पोस्ट करें।",
	},
	"mk3": {
		EN: "Write down who your ideal customer is (age, area, budget) and aim every promotion at them.",
		HI: "लिखें कि आपका आदर्श ग्राहक कौन है (उम्र, क्षेत्र, बजट) और हर प्रमोशन उन्हीं पर केंद्रित करें।",
	},
	"fin1": {
		EN: "Record all transactions. Use a simple account book or mobile app.",
		HI: "सभी लेन-देन की रिकॉर्डिंग करें। एक सिंपल खाता बही या मोबाइल ऐप का इस्तेमाल करें।",
	},
	"fin4": {
		EN: "Open a separate business bank account. Mixing personal and business money hides your real profit.",
		HI: "अलग बिजनेस बैंक खाता खोलें। निजी और व्यावसायिक पैसा मिलाने से असली मुनाफा छिप जाता है।",
	},
}
