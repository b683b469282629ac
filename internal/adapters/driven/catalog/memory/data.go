package memory

import "github.com/atelier-labs/stylist-cli/internal/core/domain"

// dressProducts is the formal and evening wear bucket.
func dressProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "d1", Name: "Silk Midi Dress", Price: 395, Category: "Dresses", Brand: "MAISON",
			Colors: []string{"Navy", "Black"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Description: "Elegant silk midi dress with a flattering silhouette. Perfect for formal occasions " +
				"and evening events. Features a concealed back zipper and fully lined interior.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Saks Fifth Avenue", LogoRef: "saks-logo.jpg", URL: "#"},
				{Name: "Neiman Marcus", LogoRef: "neiman-marcus-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d2", Name: "Tailored Evening Gown", Price: 650, Category: "Dresses", Brand: "ATELIER",
			Colors: []string{"Black"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Sophisticated floor-length gown with impeccable tailoring. Features a structured " +
				"bodice and flowing skirt that creates a timeless silhouette.",
			Retailers: []domain.Retailer{
				{Name: "Bergdorf Goodman", LogoRef: "bergdorf-logo.jpg", URL: "#"},
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
			},
		},
		{
			ID: "d3", Name: "Wrap Cocktail Dress", Price: 285, Category: "Dresses", Brand: "MODERNE",
			Colors: []string{"Red", "Navy"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Flattering wrap-style cocktail dress that accentuates your curves. The adjustable " +
				"tie waist ensures a perfect fit every time.",
			Retailers: []domain.Retailer{
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
				{Name: "Macy's", LogoRef: "macys-logo.png", URL: "#"},
			},
		},
		{
			ID: "d4", Name: "Satin Slip Dress", Price: 425, Category: "Dresses", Brand: "LUXE",
			Colors: []string{"Black", "Navy", "Beige"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Description: "Luxurious satin slip dress with delicate straps. The bias-cut design drapes " +
				"beautifully and creates an effortlessly elegant look.",
			Retailers: []domain.Retailer{
				{Name: "NET-A-PORTER", LogoRef: "net-a-porter-logo.jpg", URL: "#"},
				{Name: "Saks Fifth Avenue", LogoRef: "saks-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d5", Name: "Floral Maxi Dress", Price: 340, Category: "Dresses", Brand: "BLOOM",
			Colors: []string{"Pink", "Blue"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Romantic floral maxi dress perfect for garden parties and summer weddings. " +
				"Features a tiered skirt and adjustable straps.",
			Retailers: []domain.Retailer{
				{Name: "Anthropologie", LogoRef: "anthropologie-logo.jpg", URL: "#"},
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
			},
		},
		{
			ID: "d6", Name: "Velvet Mini Dress", Price: 295, Category: "Dresses", Brand: "LUXE",
			Colors: []string{"Black", "Green"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Description: "Stunning velvet mini dress with a fitted silhouette. The rich texture and elegant " +
				"cut make it perfect for cocktail events.",
			Retailers: []domain.Retailer{
				{Name: "Revolve", LogoRef: "revolve-logo.jpg", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d7", Name: "Lace Evening Dress", Price: 520, Category: "Dresses", Brand: "ATELIER",
			Colors: []string{"Black", "Navy"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Exquisite lace evening dress with intricate detailing. The sheer overlay adds " +
				"a touch of romance while maintaining sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Neiman Marcus", LogoRef: "neiman-marcus-logo.jpg", URL: "#"},
				{Name: "Saks Fifth Avenue", LogoRef: "saks-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d8", Name: "Pleated Midi Dress", Price: 365, Category: "Dresses", Brand: "MODERNE",
			Colors: []string{"Beige", "Navy"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Graceful pleated midi dress that moves beautifully with every step. The timeless " +
				"design makes it a versatile addition to your wardrobe.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d9", Name: "Off-Shoulder Gown", Price: 595, Category: "Dresses", Brand: "ATELIER",
			Colors: []string{"Red", "Black"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Description: "Dramatic off-shoulder evening gown that makes a statement. The structured bodice " +
				"and flowing skirt create a stunning silhouette.",
			Retailers: []domain.Retailer{
				{Name: "Bergdorf Goodman", LogoRef: "bergdorf-logo.jpg", URL: "#"},
				{Name: "NET-A-PORTER", LogoRef: "net-a-porter-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d10", Name: "Sequin Party Dress", Price: 450, Category: "Dresses", Brand: "LUXE",
			Colors: []string{"Black", "Gold"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Dazzling sequin dress that catches the light from every angle. Perfect for " +
				"celebrations where you want to shine.",
			Retailers: []domain.Retailer{
				{Name: "Revolve", LogoRef: "revolve-logo.jpg", URL: "#"},
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
			},
		},
		{
			ID: "d11", Name: "Chiffon Wrap Dress", Price: 315, Category: "Dresses", Brand: "BLOOM",
			Colors: []string{"Blue", "Pink"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Ethereal chiffon wrap dress with a flowing silhouette. The lightweight fabric " +
				"and romantic design make it perfect for warm-weather events.",
			Retailers: []domain.Retailer{
				{Name: "Anthropologie", LogoRef: "anthropologie-logo.jpg", URL: "#"},
				{Name: "Macy's", LogoRef: "macys-logo.png", URL: "#"},
			},
		},
		{
			ID: "d12", Name: "Structured Blazer Dress", Price: 485, Category: "Dresses", Brand: "MODERNE",
			Colors: []string{"Black", "Navy"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Modern blazer-inspired dress that combines professional and party-ready. The " +
				"tailored fit and button details add sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d13", Name: "Silk Slip Maxi Dress", Price: 540, Category: "Dresses", Brand: "LUXE",
			Colors: []string{"Champagne", "Black"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Description: "Luxurious silk slip maxi dress with a bias-cut that drapes beautifully. The " +
				"minimalist design exudes effortless elegance.",
			Retailers: []domain.Retailer{
				{Name: "NET-A-PORTER", LogoRef: "net-a-porter-logo.jpg", URL: "#"},
				{Name: "Saks Fifth Avenue", LogoRef: "saks-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d14", Name: "Embroidered Cocktail Dress", Price: 425, Category: "Dresses", Brand: "ATELIER",
			Colors: []string{"White", "Navy"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Stunning cocktail dress featuring intricate embroidery. The detailed craftsmanship " +
				"and fitted silhouette create a show-stopping look.",
			Retailers: []domain.Retailer{
				{Name: "Neiman Marcus", LogoRef: "neiman-marcus-logo.jpg", URL: "#"},
				{Name: "Bergdorf Goodman", LogoRef: "bergdorf-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "d15", Name: "Asymmetric Hem Dress", Price: 355, Category: "Dresses", Brand: "MODERNE",
			Colors: []string{"Black", "Red"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Contemporary dress with an eye-catching asymmetric hem. The modern cut and flowing " +
				"fabric create dynamic movement.",
			Retailers: []domain.Retailer{
				{Name: "Revolve", LogoRef: "revolve-logo.jpg", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
	}
}

// casualProducts is the everyday wear bucket.
func casualProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "c1", Name: "Organic Cotton Tee", Price: 68, Category: "Tops", Brand: "ESSENTIALS",
			Colors: []string{"White", "Black", "Beige"},
			Sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
			Description: "Comfortable organic cotton tee with a minimalist design. Perfect for everyday wear " +
				"and can be dressed up or down.",
			Retailers: []domain.Retailer{
				{Name: "H&M", LogoRef: "hm-logo.svg", URL: "#"},
				{Name: "Uniqlo", LogoRef: "uniqlo-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c2", Name: "Relaxed Denim", Price: 195, Category: "Bottoms", Brand: "DENIM CO",
			Colors:      []string{"Blue", "Black"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Description: "Relaxed fit denim jeans with a comfortable stretch. Ideal for casual outings and everyday wear.",
			Retailers: []domain.Retailer{
				{Name: "Levi's", LogoRef: "levis-logo.svg", URL: "#"},
				{Name: "Wrangler", LogoRef: "wrangler-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c3", Name: "Cashmere Sweater", Price: 320, Category: "Knitwear", Brand: "KNIT",
			Colors: []string{"Beige", "Navy", "Gray"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Soft and luxurious cashmere sweater with a classic fit. Perfect for chilly days " +
				"and adding a touch of warmth to any outfit.",
			Retailers: []domain.Retailer{
				{Name: "J.Crew", LogoRef: "jcrew-logo.svg", URL: "#"},
				{Name: "Banana Republic", LogoRef: "banana-republic-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c4", Name: "Linen Trousers", Price: 165, Category: "Bottoms", Brand: "FLOW",
			Colors: []string{"Beige", "White", "Navy"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Comfortable linen trousers with a wide leg design. Perfect for warm weather and " +
				"adds a casual touch to any outfit.",
			Retailers: []domain.Retailer{
				{Name: "Anthropologie", LogoRef: "anthropologie-logo.jpg", URL: "#"},
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
			},
		},
		{
			ID: "c5", Name: "Cotton Hoodie", Price: 125, Category: "Tops", Brand: "ESSENTIALS",
			Colors:      []string{"Gray", "Black", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Description: "Cozy cotton hoodie with a relaxed fit. Perfect for layering and casual outings.",
			Retailers: []domain.Retailer{
				{Name: "Sweaty Betty", LogoRef: "sweaty-betty-logo.svg", URL: "#"},
				{Name: "Adidas", LogoRef: "adidas-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c6", Name: "Striped T-Shirt", Price: 75, Category: "Tops", Brand: "BASICS",
			Colors: []string{"Navy", "White"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Classic striped t-shirt with a comfortable fit. Perfect for versatile wear and " +
				"can be paired with various bottoms.",
			Retailers: []domain.Retailer{
				{Name: "Zara", LogoRef: "zara-logo.svg", URL: "#"},
				{Name: "Pull&Bear", LogoRef: "pull-bear-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c7", Name: "Jogger Pants", Price: 145, Category: "Bottoms", Brand: "COMFORT",
			Colors:      []string{"Black", "Gray", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Description: "Comfortable jogger pants with a relaxed fit and stretch. Ideal for casual wear and workouts.",
			Retailers: []domain.Retailer{
				{Name: "Gap", LogoRef: "gap-logo.svg", URL: "#"},
				{Name: "Old Navy", LogoRef: "old-navy-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c8", Name: "Denim Jacket", Price: 225, Category: "Outerwear", Brand: "DENIM CO",
			Colors:      []string{"Blue", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Classic denim jacket with a timeless design. Perfect for adding a stylish touch to any outfit.",
			Retailers: []domain.Retailer{
				{Name: "Levi's", LogoRef: "levis-logo.svg", URL: "#"},
				{Name: "Wrangler", LogoRef: "wrangler-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c9", Name: "Ribbed Tank Top", Price: 52, Category: "Tops", Brand: "BASICS",
			Colors: []string{"White", "Black", "Beige"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Minimalist ribbed tank top with a comfortable fit. Perfect for everyday wear and " +
				"can be dressed up or down.",
			Retailers: []domain.Retailer{
				{Name: "H&M", LogoRef: "hm-logo.svg", URL: "#"},
				{Name: "Uniqlo", LogoRef: "uniqlo-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c10", Name: "Cargo Pants", Price: 185, Category: "Bottoms", Brand: "URBAN",
			Colors:      []string{"Beige", "Black", "Green"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Description: "Utility-style cargo pants with multiple pockets. Perfect for casual wear and outdoor activities.",
			Retailers: []domain.Retailer{
				{Name: "Patagonia", LogoRef: "patagonia-logo.svg", URL: "#"},
				{Name: "The North Face", LogoRef: "north-face-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c11", Name: "Oversized Shirt", Price: 145, Category: "Tops", Brand: "ESSENTIALS",
			Colors:      []string{"White", "Blue", "Beige"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Description: "Oversized shirt with a relaxed fit. Perfect for layering and casual outings.",
			Retailers: []domain.Retailer{
				{Name: "Sweaty Betty", LogoRef: "sweaty-betty-logo.svg", URL: "#"},
				{Name: "Adidas", LogoRef: "adidas-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c12", Name: "Sweatpants", Price: 95, Category: "Bottoms", Brand: "COMFORT",
			Colors:      []string{"Gray", "Black", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Description: "Comfortable sweatpants with a cozy feel. Perfect for casual wear and workouts.",
			Retailers: []domain.Retailer{
				{Name: "Gap", LogoRef: "gap-logo.svg", URL: "#"},
				{Name: "Old Navy", LogoRef: "old-navy-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c13", Name: "Polo Shirt", Price: 95, Category: "Tops", Brand: "CLASSICS",
			Colors:      []string{"Navy", "White", "Black"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Description: "Classic polo shirt with a button-down collar. Perfect for both casual and formal wear.",
			Retailers: []domain.Retailer{
				{Name: "Nike", LogoRef: "nike-logo.svg", URL: "#"},
				{Name: "Puma", LogoRef: "puma-logo.svg", URL: "#"},
			},
		},
		{
			ID: "c14", Name: "Chino Shorts", Price: 115, Category: "Bottoms", Brand: "SUMMER",
			Colors:      []string{"Beige", "Navy", "White"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Description: "Comfortable chino shorts with a versatile look. Perfect for casual wear and outdoor activities.",
			Retailers: []domain.Retailer{
				{Name: "Patagonia", LogoRef: "patagonia-logo.svg", URL: "#"},
				{Name: "The North Face", LogoRef: "north-face-logo.svg", URL: "#"},
			},
		},
	}
}

// workProducts is the professional workwear bucket.
func workProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "w1", Name: "Structured Blazer", Price: 485, Category: "Outerwear", Brand: "POWER",
			Colors: []string{"Navy", "Black", "Gray"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Sophisticated structured blazer with impeccable tailoring. Perfect for professional " +
				"settings and adds a touch of elegance.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "w2", Name: "Classic Trench", Price: 575, Category: "Outerwear", Brand: "ICONIC",
			Colors:      []string{"Beige", "Black"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Description: "Timeless classic trench coat with a tailored fit. Perfect for both casual and professional wear.",
			Retailers: []domain.Retailer{
				{Name: "Bergdorf Goodman", LogoRef: "bergdorf-logo.jpg", URL: "#"},
				{Name: "NET-A-PORTER", LogoRef: "net-a-porter-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "w3", Name: "Silk Blouse", Price: 245, Category: "Tops", Brand: "REFINED",
			Colors: []string{"White", "Beige", "Navy"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Luxurious silk blouse with a fitted silhouette. Perfect for professional settings " +
				"and adds a touch of elegance.",
			Retailers: []domain.Retailer{
				{Name: "NET-A-PORTER", LogoRef: "net-a-porter-logo.jpg", URL: "#"},
				{Name: "Saks Fifth Avenue", LogoRef: "saks-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "w4", Name: "Tailored Trousers", Price: 295, Category: "Bottoms", Brand: "EXECUTIVE",
			Colors: []string{"Black", "Navy", "Gray"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Tailored trousers with a polished fit. Perfect for professional settings and adds " +
				"a touch of sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Bergdorf Goodman", LogoRef: "bergdorf-logo.jpg", URL: "#"},
				{Name: "NET-A-PORTER", LogoRef: "net-a-porter-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "w5", Name: "Pencil Skirt", Price: 195, Category: "Bottoms", Brand: "POWER",
			Colors: []string{"Black", "Navy", "Gray"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Classic pencil skirt with a fitted silhouette. Perfect for professional settings " +
				"and adds a touch of sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "w6", Name: "Button-Down Shirt", Price: 165, Category: "Tops", Brand: "CLASSICS",
			Colors: []string{"White", "Blue", "Pink"},
			Sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
			Description: "Classic button-down shirt with a tailored fit. Perfect for professional settings " +
				"and adds a touch of sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Uniqlo", LogoRef: "uniqlo-logo.svg", URL: "#"},
				{Name: "H&M", LogoRef: "hm-logo.svg", URL: "#"},
			},
		},
		{
			ID: "w7", Name: "Wide-Leg Pants", Price: 315, Category: "Bottoms", Brand: "MODERN",
			Colors:      []string{"Beige", "Black", "Navy"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Wide-leg pants with a modern fit. Perfect for both casual and professional wear.",
			Retailers: []domain.Retailer{
				{Name: "Patagonia", LogoRef: "patagonia-logo.svg", URL: "#"},
				{Name: "The North Face", LogoRef: "north-face-logo.svg", URL: "#"},
			},
		},
		{
			ID: "w8", Name: "Knit Cardigan", Price: 275, Category: "Knitwear", Brand: "KNIT",
			Colors: []string{"Gray", "Beige", "Navy"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Description: "Sophisticated knit cardigan with a tailored fit. Perfect for professional settings " +
				"and adds a touch of warmth.",
			Retailers: []domain.Retailer{
				{Name: "Banana Republic", LogoRef: "banana-republic-logo.svg", URL: "#"},
				{Name: "J.Crew", LogoRef: "jcrew-logo.svg", URL: "#"},
			},
		},
		{
			ID: "w9", Name: "Wool Blazer", Price: 525, Category: "Outerwear", Brand: "EXECUTIVE",
			Colors: []string{"Gray", "Black", "Navy"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Luxurious wool blazer with a tailored fit. Perfect for professional settings and " +
				"adds a touch of sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
		{
			ID: "w10", Name: "A-Line Skirt", Price: 215, Category: "Bottoms", Brand: "FEMININE",
			Colors:      []string{"Navy", "Black", "Gray"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Graceful a-line skirt with a fitted silhouette. Perfect for both casual and professional wear.",
			Retailers: []domain.Retailer{
				{Name: "Anthropologie", LogoRef: "anthropologie-logo.jpg", URL: "#"},
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
			},
		},
		{
			ID: "w11", Name: "Turtleneck Top", Price: 145, Category: "Tops", Brand: "ESSENTIALS",
			Colors: []string{"Black", "White", "Gray"},
			Sizes:  []string{"XS", "S", "M", "L", "XL"},
			Description: "Classic turtleneck top with a tailored fit. Perfect for professional settings and " +
				"adds a touch of warmth.",
			Retailers: []domain.Retailer{
				{Name: "Uniqlo", LogoRef: "uniqlo-logo.svg", URL: "#"},
				{Name: "H&M", LogoRef: "hm-logo.svg", URL: "#"},
			},
		},
		{
			ID: "w12", Name: "Pleated Midi Skirt", Price: 245, Category: "Bottoms", Brand: "FEMININE",
			Colors:      []string{"Black", "Navy", "Beige"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Graceful pleated midi skirt with a fitted silhouette. Perfect for both casual and professional wear.",
			Retailers: []domain.Retailer{
				{Name: "Anthropologie", LogoRef: "anthropologie-logo.jpg", URL: "#"},
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
			},
		},
		{
			ID: "w13", Name: "Leather Loafers", Price: 325, Category: "Shoes", Brand: "WALK",
			Colors:      []string{"Black", "Tan"},
			Sizes:       []string{"S", "M", "L"},
			Description: "Stylish leather loafers with a comfortable fit. Perfect for both casual and professional wear.",
			Retailers: []domain.Retailer{
				{Name: "Nike", LogoRef: "nike-logo.svg", URL: "#"},
				{Name: "Puma", LogoRef: "puma-logo.svg", URL: "#"},
			},
		},
		{
			ID: "w14", Name: "Leather Briefcase", Price: 495, Category: "Accessories", Brand: "EXECUTIVE",
			Colors: []string{"Tan", "Black"},
			Sizes:  []string{"M"},
			Description: "Stylish leather briefcase with a modern design. Perfect for professional settings " +
				"and adds a touch of sophistication.",
			Retailers: []domain.Retailer{
				{Name: "Nordstrom", LogoRef: "nordstrom-logo.png", URL: "#"},
				{Name: "Bloomingdale's", LogoRef: "bloomingdales-logo.jpg", URL: "#"},
			},
		},
	}
}
