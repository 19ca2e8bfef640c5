package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[string]string{
	language.English: {
		"restaurantInfo.name":                        "Bella Vista",
		"restaurantInfo.tagline":                     "Authentic Italian Cuisine",
		"restaurantInfo.openingHours.mondayThursday": "Monday - Thursday",
		"restaurantInfo.openingHours.fridaySaturday": "Friday - Saturday",
		"restaurantInfo.openingHours.sunday":         "Sunday",
		"restaurantInfo.about":                       "For over 20 years, Bella Vista has been serving authentic Italian dishes made from family recipes and the freshest ingredients.",

		"menuItems.margheritaPizza":    "Margherita Pizza",
		"menuItems.margheritaDesc":     "Fresh mozzarella, tomato sauce, and basil on our wood-fired crust",
		"menuItems.spaghettiCarbonara": "Spaghetti Carbonara",
		"menuItems.carbonaraDesc":      "Classic Roman pasta with eggs, pecorino, guanciale, and black pepper",
		"menuItems.ossoBuco":           "Osso Buco",
		"menuItems.ossoBucoDesc":       "Braised veal shanks with gremolata and saffron risotto",
		"menuItems.tiramisu":           "Tiramisu",
		"menuItems.tiramisuDesc":       "Coffee-soaked ladyfingers layered with mascarpone cream",
		"menuItems.caesarSalad":        "Caesar Salad",
		"menuItems.caesarDesc":         "Crisp romaine, parmesan, croutons, and house Caesar dressing",
		"menuItems.beefBurger":         "Beef Burger",
		"menuItems.burgerDesc":         "Grilled beef patty with cheese, lettuce, tomato, and fries",

		"categories.Pizza":       "Pizza",
		"categories.Pasta":       "Pasta",
		"categories.Main Course": "Main Course",
		"categories.Dessert":     "Dessert",
		"categories.Salads":      "Salads",
		"categories.Burgers":     "Burgers",

		"nav.home":    "Home",
		"nav.menu":    "Menu",
		"nav.gallery": "Gallery",
		"nav.about":   "About",
		"nav.contact": "Contact",
		"nav.callNow": "Call Now",

		"home.featuredDishes": "Featured Dishes",
		"home.viewFullMenu":   "View Full Menu",
		"home.openingHours":   "Opening Hours",
		"home.location":       "Location",
		"home.callToOrder":    "Call to Order",

		"menu.title":          "Our Menu",
		"menu.subtitle":       "Discover our selection of traditional Italian dishes",
		"menu.all":            "All",
		"menu.callNowToOrder": "Call Now to Order",

		"gallery.title":    "Gallery",
		"gallery.subtitle": "A glimpse into our kitchen and dining room",

		"about.title":    "About Us",
		"about.subtitle": "Our story, our passion",
		"about.ourStory": "Our Story",
		"about.meetTeam": "Meet Our Team",

		"contact.title":             "Contact Us",
		"contact.subtitle":          "We would love to hear from you",
		"contact.phone":             "Phone",
		"contact.whatsapp":          "WhatsApp",
		"contact.address":           "Address",
		"contact.openingHours":      "Opening Hours",
		"contact.getDirections":     "Get Directions",
		"contact.messageOnWhatsApp": "Message on WhatsApp",

		"pwa.addToHomeScreen": "Add our app to your home screen for quick access to the menu",
		"pwa.addNow":          "Add Now",
		"pwa.later":           "Later",
	},
	language.Arabic: {
		"restaurantInfo.name":                        "بيلا فيستا",
		"restaurantInfo.tagline":                     "مطبخ إيطالي أصيل",
		"restaurantInfo.openingHours.mondayThursday": "الاثنين - الخميس",
		"restaurantInfo.openingHours.fridaySaturday": "الجمعة - السبت",
		"restaurantInfo.openingHours.sunday":         "الأحد",
		"restaurantInfo.about":                       "منذ أكثر من 20 عامًا، يقدم بيلا فيستا أطباقًا إيطالية أصيلة مصنوعة من وصفات عائلية وأطزج المكونات.",

		"menuItems.margheritaPizza":    "بيتزا مارغريتا",
		"menuItems.margheritaDesc":     "موزاريلا طازجة وصلصة طماطم وريحان على عجينتنا المخبوزة في فرن الحطب",
		"menuItems.spaghettiCarbonara": "سباغيتي كاربونارا",
		"menuItems.carbonaraDesc":      "معكرونة رومانية كلاسيكية بالبيض وجبن البيكورينو والفلفل الأسود",
		"menuItems.ossoBuco":           "أوسو بوكو",
		"menuItems.ossoBucoDesc":       "ساق عجل مطهوة ببطء مع الغريمولاتا وريزوتو الزعفران",
		"menuItems.tiramisu":           "تيراميسو",
		"menuItems.tiramisuDesc":       "بسكويت منقوع بالقهوة مع طبقات من كريمة الماسكاربوني",
		"menuItems.caesarSalad":        "سلطة سيزر",
		"menuItems.caesarDesc":         "خس روماني مقرمش وبارميزان وخبز محمص وصلصة سيزر",
		"menuItems.beefBurger":         "برغر لحم",
		"menuItems.burgerDesc":         "شريحة لحم مشوية مع الجبن والخس والطماطم والبطاطس",

		"categories.Pizza":       "بيتزا",
		"categories.Pasta":       "معكرونة",
		"categories.Main Course": "الطبق الرئيسي",
		"categories.Dessert":     "حلويات",
		"categories.Salads":      "سلطات",
		"categories.Burgers":     "برغر",

		"nav.home":    "الرئيسية",
		"nav.menu":    "القائمة",
		"nav.gallery": "المعرض",
		"nav.about":   "من نحن",
		"nav.contact": "اتصل بنا",
		"nav.callNow": "اتصل الآن",

		"home.featuredDishes": "أطباق مميزة",
		"home.viewFullMenu":   "عرض القائمة الكاملة",
		"home.openingHours":   "ساعات العمل",
		"home.location":       "الموقع",
		"home.callToOrder":    "اتصل للطلب",

		"menu.title":          "قائمتنا",
		"menu.subtitle":       "اكتشف تشكيلتنا من الأطباق الإيطالية التقليدية",
		"menu.all":            "الكل",
		"menu.callNowToOrder": "اتصل الآن للطلب",

		"gallery.title":    "المعرض",
		"gallery.subtitle": "لمحة عن مطبخنا وقاعة الطعام",

		"about.title":    "من نحن",
		"about.subtitle": "قصتنا وشغفنا",
		"about.ourStory": "قصتنا",
		"about.meetTeam": "تعرف على فريقنا",

		"contact.title":             "اتصل بنا",
		"contact.subtitle":          "يسعدنا تواصلك معنا",
		"contact.phone":             "الهاتف",
		"contact.whatsapp":          "واتساب",
		"contact.address":           "العنوان",
		"contact.openingHours":      "ساعات العمل",
		"contact.getDirections":     "احصل على الاتجاهات",
		"contact.messageOnWhatsApp": "راسلنا على واتساب",

		"pwa.addToHomeScreen": "أضف تطبيقنا إلى الشاشة الرئيسية للوصول السريع إلى القائمة",
		"pwa.addNow":          "أضف الآن",
		"pwa.later":           "لاحقًا",
	},
}
