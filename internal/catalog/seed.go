package catalog

// seedDetails is the demo catalog, in featured order. Product data is
// intentionally hard coded; the catalog boundary hides that from the
// rest of the service.
func seedDetails() []Details {
	return []Details{
		{
			Product: Product{
				ID: 1, Name: "Wireless Headphones Pro", PriceCents: 12999, OriginalPriceCents: intPtr(15999),
				Image: "/premium-wireless-headphones-black.png", Rating: 4.8, Reviews: 324,
				Category: "electronics", Badge: strPtr("Best Seller"),
			},
			Images: []string{
				"/premium-wireless-headphones-black.png",
				"/headphones-side-view.png",
				"/headphones-case-view.png",
				"/headphones-wearing-demo.png",
			},
			Description: "Experience premium audio quality with our Wireless Headphones Pro. Featuring advanced noise cancellation technology, 30-hour battery life, and crystal-clear sound reproduction. Perfect for music lovers, professionals, and anyone who demands the best in wireless audio.",
			Features: []string{
				"Active Noise Cancellation (ANC)",
				"30-hour battery life with quick charge",
				"Premium drivers for exceptional sound quality",
				"Comfortable over-ear design with memory foam",
				"Bluetooth 5.0 with multipoint connection",
				"Built-in microphone for calls",
				"Foldable design with carrying case",
				"Touch controls for easy operation",
			},
			Specifications: map[string]string{
				"Driver Size":        "40mm",
				"Frequency Response": "20Hz - 20kHz",
				"Impedance":          "32 Ohm",
				"Battery Life":       "30 hours (ANC on), 40 hours (ANC off)",
				"Charging Time":      "2 hours (full), 15 min (5 hours playback)",
				"Weight":             "250g",
				"Connectivity":       "Bluetooth 5.0, 3.5mm jack",
				"Warranty":           "2 years",
			},
			InStock: true, StockCount: 15,
		},
		{
			Product: Product{
				ID: 2, Name: "Smartwatch Elite", PriceCents: 24999, OriginalPriceCents: intPtr(29999),
				Image: "/modern-smartwatch-silver.png", Rating: 4.9, Reviews: 156,
				Category: "electronics", Badge: strPtr("New"),
			},
			Images: []string{
				"/modern-smartwatch-silver.png",
				"/smartwatch-black-variant.png",
				"/smartwatch-fitness-tracking.png",
				"/smartwatch-charging-dock.png",
			},
			Description: "The Smartwatch Elite combines cutting-edge technology with elegant design. Track your fitness, monitor your health, stay connected, and express your style with this premium smartwatch featuring a vibrant AMOLED display and 7-day battery life.",
			Features: []string{
				"1.4-inch AMOLED display with Always-On feature",
				"7-day battery life with fast charging",
				"Comprehensive health monitoring (heart rate, SpO2, sleep)",
				"GPS tracking for outdoor activities",
				"Water resistant up to 50 meters",
				"100+ workout modes",
				"Smart notifications and call handling",
				"Premium materials with interchangeable bands",
			},
			Specifications: map[string]string{
				"Display":          "1.4-inch AMOLED, 454x454 resolution",
				"Battery":          "7 days typical use, 2 days heavy use",
				"Water Resistance": "5ATM (50 meters)",
				"Sensors":          "Heart rate, SpO2, accelerometer, gyroscope, GPS",
				"Connectivity":     "Bluetooth 5.0, Wi-Fi",
				"Compatibility":    "iOS 12+, Android 6.0+",
				"Weight":           "45g (without strap)",
				"Warranty":         "1 year",
			},
			InStock: true, StockCount: 8,
		},
		{
			Product: Product{
				ID: 3, Name: "Premium Laptop Bag", PriceCents: 7999, OriginalPriceCents: intPtr(9999),
				Image: "/leather-laptop-bag-brown-professional.png", Rating: 4.7, Reviews: 89,
				Category: "accessories", Badge: strPtr("Sale"),
			},
			Images:      []string{"/leather-laptop-bag-brown-professional.png"},
			Description: "Carry your gear in style with this full-grain leather laptop bag. Fits laptops up to 15.6 inches, with padded compartments and brass hardware built to last for years of daily commuting.",
			Features: []string{
				"Full-grain leather exterior",
				"Padded compartment for laptops up to 15.6 inches",
				"Dedicated tablet and accessory pockets",
				"Adjustable shoulder strap with pad",
				"Brass hardware and YKK zippers",
			},
			Specifications: map[string]string{
				"Material":   "Full-grain leather",
				"Fits":       "Laptops up to 15.6 inches",
				"Dimensions": "16 x 12 x 4 inches",
				"Weight":     "1.4kg",
				"Warranty":   "1 year",
			},
			InStock: true, StockCount: 12,
		},
		{
			Product: Product{
				ID: 4, Name: "Bluetooth Speaker", PriceCents: 8999,
				Image: "/modern-bluetooth-speaker-black.png", Rating: 4.6, Reviews: 203,
				Category: "electronics",
			},
			Images:      []string{"/modern-bluetooth-speaker-black.png"},
			Description: "Room-filling 360-degree sound in a compact, water-resistant body. Pair two speakers for true stereo and enjoy up to 12 hours of playtime on a single charge.",
			Features: []string{
				"360-degree sound with passive radiators",
				"12-hour battery life",
				"IPX6 water resistance",
				"Stereo pairing with a second speaker",
				"Built-in microphone for speakerphone calls",
			},
			Specifications: map[string]string{
				"Output":           "20W",
				"Battery":          "12 hours",
				"Water Resistance": "IPX6",
				"Connectivity":     "Bluetooth 5.0, AUX",
				"Weight":           "560g",
			},
			InStock: true, StockCount: 20,
		},
		{
			Product: Product{
				ID: 5, Name: "Designer Sunglasses", PriceCents: 15999, OriginalPriceCents: intPtr(19999),
				Image: "/designer-sunglasses-aviator-style.png", Rating: 4.5, Reviews: 127,
				Category: "accessories", Badge: strPtr("Sale"),
			},
			Images:      []string{"/designer-sunglasses-aviator-style.png"},
			Description: "Classic aviator styling with polarized lenses and a lightweight titanium frame. Includes a hard case and microfiber pouch.",
			Features: []string{
				"Polarized UV400 lenses",
				"Lightweight titanium frame",
				"Adjustable silicone nose pads",
				"Hard case and cleaning pouch included",
			},
			Specifications: map[string]string{
				"Lens":       "Polarized, UV400",
				"Frame":      "Titanium",
				"Lens Width": "58mm",
				"Weight":     "24g",
				"Warranty":   "1 year",
			},
			InStock: true, StockCount: 10,
		},
		{
			Product: Product{
				ID: 6, Name: "Cotton T-Shirt", PriceCents: 2999,
				Image: "/premium-cotton-t-shirt-navy-blue.png", Rating: 4.4, Reviews: 89,
				Category: "clothing",
			},
			Images:      []string{"/premium-cotton-t-shirt-navy-blue.png"},
			Description: "An everyday essential cut from heavyweight combed cotton. Pre-shrunk, breathable, and made to hold its shape wash after wash.",
			Features: []string{
				"100% combed ring-spun cotton",
				"Pre-shrunk fabric",
				"Reinforced shoulder seams",
				"Tagless neck label",
			},
			Specifications: map[string]string{
				"Material": "100% cotton, 220gsm",
				"Fit":      "Regular",
				"Care":     "Machine wash cold",
				"Origin":   "Made in Portugal",
			},
			InStock: true, StockCount: 40,
		},
		{
			Product: Product{
				ID: 7, Name: "Gaming Mouse", PriceCents: 6999, OriginalPriceCents: intPtr(8999),
				Image: "/gaming-mouse-rgb-lighting-black.png", Rating: 4.7, Reviews: 245,
				Category: "electronics", Badge: strPtr("Sale"),
			},
			Images:      []string{"/gaming-mouse-rgb-lighting-black.png"},
			Description: "A 16,000 DPI optical sensor, eight programmable buttons, and per-zone RGB lighting make this the mouse to beat at its price.",
			Features: []string{
				"16,000 DPI optical sensor",
				"8 programmable buttons",
				"Per-zone RGB lighting",
				"On-board memory profiles",
				"PTFE glide feet",
			},
			Specifications: map[string]string{
				"Sensor":       "Optical, 16,000 DPI",
				"Buttons":      "8 programmable",
				"Polling Rate": "1000Hz",
				"Cable":        "1.8m braided",
				"Weight":       "89g",
			},
			InStock: true, StockCount: 25,
		},
		{
			Product: Product{
				ID: 8, Name: "Denim Jacket", PriceCents: 8999,
				Image: "/classic-denim-jacket-blue-vintage-style.png", Rating: 4.3, Reviews: 67,
				Category: "clothing",
			},
			Images:      []string{"/classic-denim-jacket-blue-vintage-style.png"},
			Description: "A vintage-wash trucker jacket in rigid 14oz denim that breaks in beautifully. Button front, twin chest pockets, and adjustable waist tabs.",
			Features: []string{
				"14oz rigid denim",
				"Classic trucker silhouette",
				"Twin chest pockets with button flaps",
				"Adjustable waist tabs",
			},
			Specifications: map[string]string{
				"Material": "100% cotton denim, 14oz",
				"Fit":      "Regular",
				"Wash":     "Vintage mid-blue",
				"Care":     "Wash rarely, cold",
			},
			InStock: true, StockCount: 18,
		},
		{
			Product: Product{
				ID: 9, Name: "Wireless Charger", PriceCents: 3999,
				Image: "/wireless-charging-pad-modern-white.png", Rating: 4.5, Reviews: 134,
				Category: "electronics",
			},
			Images:      []string{"/wireless-charging-pad-modern-white.png"},
			Description: "A slim 15W Qi charging pad with foreign-object detection and a non-slip surface. Charges through most cases up to 5mm thick.",
			Features: []string{
				"15W fast wireless charging",
				"Qi certified",
				"Foreign-object detection",
				"Case friendly up to 5mm",
				"LED charge indicator",
			},
			Specifications: map[string]string{
				"Output":        "15W / 10W / 7.5W / 5W",
				"Input":         "USB-C",
				"Compatibility": "Qi devices",
				"Thickness":     "8mm",
			},
			InStock: true, StockCount: 30,
		},
		{
			Product: Product{
				ID: 10, Name: "Leather Wallet", PriceCents: 4999, OriginalPriceCents: intPtr(6999),
				Image: "/leather-wallet-brown-minimalist-design.png", Rating: 4.6, Reviews: 98,
				Category: "accessories", Badge: strPtr("Sale"),
			},
			Images:      []string{"/leather-wallet-brown-minimalist-design.png"},
			Description: "A minimalist bifold in vegetable-tanned leather with RFID shielding. Six card slots, two hidden pockets, and a full-length bill compartment.",
			Features: []string{
				"Vegetable-tanned leather",
				"RFID blocking lining",
				"6 card slots, 2 hidden pockets",
				"Slim bifold profile",
			},
			Specifications: map[string]string{
				"Material":   "Vegetable-tanned leather",
				"Dimensions": "4.3 x 3.4 x 0.4 inches",
				"Protection": "RFID shielding",
				"Warranty":   "2 years",
			},
			InStock: true, StockCount: 22,
		},
		{
			Product: Product{
				ID: 11, Name: "Running Shoes", PriceCents: 11999,
				Image: "/athletic-running-shoes-white-and-blue.png", Rating: 4.8, Reviews: 312,
				Category: "clothing", Badge: strPtr("Best Seller"),
			},
			Images:      []string{"/athletic-running-shoes-white-and-blue.png"},
			Description: "A responsive daily trainer with a breathable engineered-mesh upper and a high-rebound foam midsole. Built for easy miles and long runs alike.",
			Features: []string{
				"High-rebound foam midsole",
				"Engineered mesh upper",
				"Heel counter for a locked-in fit",
				"Durable rubber outsole",
			},
			Specifications: map[string]string{
				"Drop":   "8mm",
				"Weight": "255g (size 9)",
				"Upper":  "Engineered mesh",
				"Use":    "Road running, daily training",
			},
			InStock: true, StockCount: 16,
		},
		{
			Product: Product{
				ID: 12, Name: "Phone Case", PriceCents: 2499,
				Image: "/phone-case-clear-protective-modern.png", Rating: 4.2, Reviews: 156,
				Category: "accessories",
			},
			Images:      []string{"/phone-case-clear-protective-modern.png"},
			Description: "A crystal-clear case with shock-absorbing corners and a raised bezel to protect the screen and camera. Yellowing-resistant coating keeps it clear.",
			Features: []string{
				"Military-grade drop protection",
				"Yellowing-resistant clear coating",
				"Raised screen and camera bezels",
				"Wireless charging compatible",
			},
			Specifications: map[string]string{
				"Material":        "TPU + polycarbonate",
				"Drop Rating":     "3 meters",
				"Wireless Charge": "Yes",
			},
			InStock: true, StockCount: 50,
		},
		{
			Product: Product{
				ID: 13, Name: "Hoodie", PriceCents: 5999, OriginalPriceCents: intPtr(7999),
				Image: "/comfortable-hoodie-gray-cotton.png", Rating: 4.4, Reviews: 89,
				Category: "clothing", Badge: strPtr("Sale"),
			},
			Images:      []string{"/comfortable-hoodie-gray-cotton.png"},
			Description: "A heavyweight fleece hoodie with a double-lined hood and ribbed cuffs. Brushed interior for warmth without bulk.",
			Features: []string{
				"400gsm brushed fleece",
				"Double-lined hood with flat drawcords",
				"Kangaroo pocket",
				"Ribbed cuffs and hem",
			},
			Specifications: map[string]string{
				"Material": "80% cotton, 20% polyester",
				"Weight":   "400gsm",
				"Fit":      "Relaxed",
				"Care":     "Machine wash cold",
			},
			InStock: true, StockCount: 28,
		},
		{
			Product: Product{
				ID: 14, Name: "Tablet Stand", PriceCents: 3499,
				Image: "/adjustable-tablet-stand-aluminum-silver.png", Rating: 4.3, Reviews: 76,
				Category: "accessories",
			},
			Images:      []string{"/adjustable-tablet-stand-aluminum-silver.png"},
			Description: "A CNC-machined aluminum stand with smooth height and angle adjustment. Holds tablets and phones from 4 to 13 inches, in portrait or landscape.",
			Features: []string{
				"CNC-machined aluminum",
				"Adjustable height and angle",
				"Silicone pads protect the device",
				"Folds flat for travel",
			},
			Specifications: map[string]string{
				"Material":      "Aluminum alloy",
				"Compatibility": "4 to 13 inch devices",
				"Adjustment":    "Height 5.9-7.9in, angle 0-225 degrees",
				"Weight":        "480g",
			},
			InStock: true, StockCount: 35,
		},
		{
			Product: Product{
				ID: 15, Name: "USB-C Cable", PriceCents: 1999,
				Image: "/usb-c-cable-braided-black-premium.png", Rating: 4.5, Reviews: 234,
				Category: "electronics",
			},
			Images:      []string{"/usb-c-cable-braided-black-premium.png"},
			Description: "A braided 100W USB-C cable with e-marker chip and aluminum connector housings, rated for 30,000 bends.",
			Features: []string{
				"100W power delivery",
				"480Mbps data transfer",
				"Double-braided nylon jacket",
				"Rated for 30,000 bends",
			},
			Specifications: map[string]string{
				"Length":   "2m",
				"Power":    "100W (20V/5A)",
				"Data":     "USB 2.0, 480Mbps",
				"Warranty": "Lifetime",
			},
			InStock: true, StockCount: 60,
		},
	}
}

func intPtr(value int) *int {
	return &value
}

func strPtr(value string) *string {
	return &value
}
