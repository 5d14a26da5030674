package i18n

var builtin = map[Language]map[string]string{
	English: {
		"ourStory":     "Our Story",
		"featured":     "Featured",
		"testimonials": "Testimonials",
		"shop":         "Shop",

		"cart":      "Cart",
		"clear":     "Clear",
		"checkout":  "Checkout",
		"subtotal":  "Subtotal",
		"emptyCart": "Your cart is empty.",
		"yourCart":  "Your Cart",
		"close":     "Close",
		"remove":    "Remove",

		"artisanalSkincare": "Artisanal Skincare",
		"heroTitle":         "Luxury in Every Lather",
		"heroSubtitle":      "Refined, minimal, and meticulously crafted soaps that elevate your daily ritual.",
		"shopNow":           "Shop Now",
		"featuredCreations": "Featured Creations",
		"featuredSubtitle":  "A small preview of our favorite bars: scents that linger, textures that soothe.",
		"footerTagline":     "Luxury handmade soaps crafted with all-natural ingredients.",

		"signatureCollection":  "Signature Collection",
		"signatureDescription": "Our timeless essentials, crafted for everyday luxury.",
		"seasonalCollection":   "Seasonal Collection",
		"seasonalDescription":  "Limited edition bars inspired by the changing seasons.",
		"add":                  "Add",
		"soldOut":              "Sold Out",
		"addedToCart":          "Added to cart",
		"outOfStock":           "Out of stock",

		"customerDetails": "Customer Details",
		"fullName":        "Full name",
		"email":           "Email",
		"deliveryMethod":  "Delivery Method",
		"homeDelivery":    "Home Delivery",
		"storePickup":     "Store Pickup",
		"payment":         "Payment",
		"payOnDelivery":   "Pay on Delivery",
		"mobileBanking":   "Mobile Banking",
		"deliveryAddress": "Delivery Address",
		"address":         "Address",
		"city":            "City",
		"state":           "State",
		"zip":             "ZIP",
		"placeOrder":      "Place Order",
		"processing":      "Processing…",
		"orderSummary":    "Order Summary",
		"delivery":        "Delivery",
		"pickup":          "Pickup",
		"free":            "Free",
		"vat":             "VAT",
		"total":           "Total",
		"promoCode":       "Promo Code",
		"apply":           "Apply",
		"promoApplied":    "Promo applied!",
		"invalidCode":     "Invalid code",
		"discount":        "Discount",
		"selectWallet":    "Select a wallet",
		"whatsappOpened":  "WhatsApp opened",
		"notConfigured":   "WhatsApp number not configured",

		"thankYou":         "Thank You for Your Order!",
		"orderReceived":    "Your order has been received and is being processed.",
		"transactionId":    "Transaction ID",
		"continueShopping": "Continue Shopping",
		"notFound":         "Oops! Page not found",
	},
	Swahili: {
		"ourStory":     "Hadithi Yetu",
		"featured":     "Bidhaa Bora",
		"testimonials": "Ushuhuda",
		"shop":         "Duka",

		"cart":      "Kikapu",
		"clear":     "Futa",
		"checkout":  "Lipia",
		"subtotal":  "Jumla Ndogo",
		"emptyCart": "Kikapu chako ni tupu.",
		"yourCart":  "Kikapu Chako",
		"close":     "Funga",
		"remove":    "Ondoa",

		"artisanalSkincare": "Bidhaa za Ngozi za Asili",
		"heroTitle":         "Anasa katika Kila Povu",
		"heroSubtitle":      "Sabuni safi, za kisasa, na zilizoundwa kwa uangalifu zinazoinua desturi yako ya kila siku.",
		"shopNow":           "Nunua Sasa",
		"featuredCreations": "Bidhaa Bora",
		"featuredSubtitle":  "Muhtasari mdogo wa vipande vyetu tunavyopenda zaidi: harufu zinazobaki, muundo unaotuliza.",
		"footerTagline":     "Sabuni za anasa zilizotengenezwa kwa mkono na viungo vya asili.",

		"signatureCollection":  "Mkusanyiko wa Saini",
		"signatureDescription": "Bidhaa zetu za kudumu, zilizotengenezwa kwa anasa ya kila siku.",
		"seasonalCollection":   "Mkusanyiko wa Msimu",
		"seasonalDescription":  "Vipande vya toleo la muda mfupi vilivyoongozwa na msimu unaobadilika.",
		"add":                  "Ongeza",
		"soldOut":              "Imeuzwa",
		"addedToCart":          "Imeongezwa kwenye kikapu",
		"outOfStock":           "Imeisha",

		"customerDetails": "Maelezo ya Mteja",
		"fullName":        "Jina kamili",
		"email":           "Barua pepe",
		"deliveryMethod":  "Njia ya Uwasilishaji",
		"homeDelivery":    "Uwasilishaji Nyumbani",
		"storePickup":     "Kuchukua Dukani",
		"payment":         "Malipo",
		"payOnDelivery":   "Lipa Uwasilishaji",
		"mobileBanking":   "Benki ya Simu",
		"deliveryAddress": "Anwani ya Uwasilishaji",
		"address":         "Anwani",
		"city":            "Jiji",
		"state":           "Mkoa",
		"zip":             "Nambari ya Posta",
		"placeOrder":      "Weka Oda",
		"processing":      "Inashughulikiwa…",
		"orderSummary":    "Muhtasari wa Oda",
		"delivery":        "Uwasilishaji",
		"pickup":          "Kuchukua",
		"free":            "Bure",
		"vat":             "Kodi",
		"total":           "Jumla",
		"promoCode":       "Msimbo wa Punguzo",
		"apply":           "Tumia",
		"promoApplied":    "Punguzo limetumika!",
		"invalidCode":     "Msimbo batili",
		"discount":        "Punguzo",
		"selectWallet":    "Chagua pochi",
		"whatsappOpened":  "WhatsApp imefunguliwa",
		"notConfigured":   "Nambari ya WhatsApp haijawekwa",

		"thankYou":         "Asante kwa Oda Yako!",
		"orderReceived":    "Oda yako imepokelewa na inashughulikiwa.",
		"transactionId":    "Nambari ya Muamala",
		"continueShopping": "Endelea Kununua",
		"notFound":         "Samahani! Ukurasa haupatikani",
	},
}
