package market

import "github.com/vantagelabs/vantage/pkg/models"

// builtinLeaders is the curated competitor dataset, keyed by market
// category. Valuations are in billions of USD.
var builtinLeaders = map[string][]models.MarketLeader{
	"saas": {
		{
			Name:           "Salesforce",
			Valuation:      244.0,
			FoundedYear:    1999,
			Employees:      79000,
			Users:          150000000,
			MarketSegments: []string{"crm", "enterprise", "smb"},
			PricingModel:   "subscription",
			KeyFeatures: []string{
				"user authentication",
				"api access",
				"dashboard analytics",
				"third party integrations",
				"custom workflows",
				"role based access control",
				"audit logging",
				"mobile app",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "rest apis", "real-time sync"},
		},
		{
			Name:           "Slack",
			Valuation:      27.7,
			FoundedYear:    2013,
			Employees:      2500,
			Users:          20000000,
			MarketSegments: []string{"collaboration", "enterprise", "smb"},
			PricingModel:   "freemium",
			KeyFeatures: []string{
				"user authentication",
				"api access",
				"third party integrations",
				"real time messaging",
				"search",
				"mobile app",
				"notifications",
			},
			Technologies: []string{"cloud infrastructure", "websockets", "rest apis", "machine learning"},
		},
		{
			Name:           "Zoom",
			Valuation:      24.0,
			FoundedYear:    2011,
			Employees:      8400,
			Users:          300000000,
			MarketSegments: []string{"communication", "enterprise", "education"},
			PricingModel:   "freemium",
			KeyFeatures: []string{
				"user authentication",
				"dashboard analytics",
				"recording",
				"screen sharing",
				"mobile app",
				"api access",
				"notifications",
			},
			Technologies: []string{"cloud infrastructure", "webrtc", "machine learning", "real-time sync"},
		},
		{
			Name:           "HubSpot",
			Valuation:      25.5,
			FoundedYear:    2006,
			Employees:      7600,
			Users:          194000,
			MarketSegments: []string{"crm", "marketing", "smb"},
			PricingModel:   "freemium",
			KeyFeatures: []string{
				"user authentication",
				"dashboard analytics",
				"email automation",
				"third party integrations",
				"custom workflows",
				"api access",
				"reporting",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "rest apis", "data pipelines"},
		},
	},
	"ecommerce": {
		{
			Name:           "Shopify",
			Valuation:      95.0,
			FoundedYear:    2006,
			Employees:      11600,
			Users:          4600000,
			MarketSegments: []string{"retail", "smb", "enterprise"},
			PricingModel:   "subscription",
			KeyFeatures: []string{
				"product catalog",
				"payment processing",
				"inventory management",
				"order tracking",
				"discount codes",
				"abandoned cart recovery",
				"mobile app",
				"third party integrations",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "rest apis", "graphql"},
		},
		{
			Name:           "Amazon Marketplace",
			Valuation:      1700.0,
			FoundedYear:    1994,
			Employees:      1540000,
			Users:          310000000,
			MarketSegments: []string{"retail", "logistics", "enterprise"},
			PricingModel:   "commission",
			KeyFeatures: []string{
				"product catalog",
				"payment processing",
				"order tracking",
				"personalized recommendations",
				"customer reviews",
				"same day delivery",
				"mobile app",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "recommendation engines", "robotics"},
		},
		{
			Name:           "Etsy",
			Valuation:      8.5,
			FoundedYear:    2005,
			Employees:      2400,
			Users:          96000000,
			MarketSegments: []string{"handmade", "retail", "smb"},
			PricingModel:   "commission",
			KeyFeatures: []string{
				"product catalog",
				"payment processing",
				"customer reviews",
				"search",
				"seller analytics",
				"mobile app",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "search ranking", "rest apis"},
		},
		{
			Name:           "WooCommerce",
			Valuation:      7.5,
			FoundedYear:    2011,
			Employees:      2000,
			Users:          3900000,
			MarketSegments: []string{"retail", "smb", "self-hosted"},
			PricingModel:   "open_core",
			KeyFeatures: []string{
				"product catalog",
				"payment processing",
				"inventory management",
				"discount codes",
				"third party integrations",
				"reporting",
			},
			Technologies: []string{"plugin architecture", "rest apis", "payment gateways"},
		},
	},
	"fintech": {
		{
			Name:           "Stripe",
			Valuation:      95.0,
			FoundedYear:    2010,
			Employees:      8000,
			Users:          3000000,
			MarketSegments: []string{"payments", "enterprise", "smb"},
			PricingModel:   "transaction_fee",
			KeyFeatures: []string{
				"payment processing",
				"fraud detection",
				"api access",
				"subscription billing",
				"dashboard analytics",
				"multi currency support",
				"instant payouts",
				"compliance tooling",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "rest apis", "tokenization"},
		},
		{
			Name:           "Square",
			Valuation:      41.0,
			FoundedYear:    2009,
			Employees:      12000,
			Users:          4000000,
			MarketSegments: []string{"payments", "smb", "pos"},
			PricingModel:   "transaction_fee",
			KeyFeatures: []string{
				"payment processing",
				"fraud detection",
				"inventory management",
				"dashboard analytics",
				"instant payouts",
				"mobile app",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "hardware integration", "rest apis"},
		},
		{
			Name:           "Plaid",
			Valuation:      13.4,
			FoundedYear:    2013,
			Employees:      1200,
			Users:          8000,
			MarketSegments: []string{"banking", "api", "enterprise"},
			PricingModel:   "usage_based",
			KeyFeatures: []string{
				"api access",
				"bank account linking",
				"transaction categorization",
				"fraud detection",
				"compliance tooling",
				"dashboard analytics",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "rest apis", "data aggregation"},
		},
		{
			Name:           "Wise",
			Valuation:      11.0,
			FoundedYear:    2011,
			Employees:      5500,
			Users:          16000000,
			MarketSegments: []string{"payments", "consumer", "smb"},
			PricingModel:   "transaction_fee",
			KeyFeatures: []string{
				"payment processing",
				"multi currency support",
				"fraud detection",
				"mobile app",
				"api access",
				"notifications",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "real-time sync", "rest apis"},
		},
	},
	"social": {
		{
			Name:           "Instagram",
			Valuation:      100.0,
			FoundedYear:    2010,
			Employees:      450,
			Users:          2000000000,
			MarketSegments: []string{"consumer", "advertising", "creators"},
			PricingModel:   "advertising",
			KeyFeatures: []string{
				"user profiles",
				"content feed",
				"direct messaging",
				"stories",
				"personalized recommendations",
				"creator monetization",
				"mobile app",
				"notifications",
			},
			Technologies: []string{"machine learning", "recommendation engines", "cdn", "mobile first"},
		},
		{
			Name:           "TikTok",
			Valuation:      220.0,
			FoundedYear:    2016,
			Employees:      110000,
			Users:          1500000000,
			MarketSegments: []string{"consumer", "advertising", "creators"},
			PricingModel:   "advertising",
			KeyFeatures: []string{
				"content feed",
				"personalized recommendations",
				"video editing",
				"creator monetization",
				"direct messaging",
				"live streaming",
				"mobile app",
			},
			Technologies: []string{"machine learning", "recommendation engines", "video processing", "cdn"},
		},
		{
			Name:           "LinkedIn",
			Valuation:      26.2,
			FoundedYear:    2002,
			Employees:      20000,
			Users:          1000000000,
			MarketSegments: []string{"professional", "recruiting", "advertising"},
			PricingModel:   "freemium",
			KeyFeatures: []string{
				"user profiles",
				"content feed",
				"direct messaging",
				"search",
				"job listings",
				"personalized recommendations",
				"notifications",
			},
			Technologies: []string{"machine learning", "recommendation engines", "graph databases", "rest apis"},
		},
		{
			Name:           "Discord",
			Valuation:      15.0,
			FoundedYear:    2015,
			Employees:      900,
			Users:          200000000,
			MarketSegments: []string{"gaming", "communities", "consumer"},
			PricingModel:   "freemium",
			KeyFeatures: []string{
				"direct messaging",
				"voice channels",
				"user profiles",
				"screen sharing",
				"role based access control",
				"third party integrations",
				"mobile app",
			},
			Technologies: []string{"websockets", "webrtc", "cloud infrastructure", "voice processing"},
		},
	},
	"marketplace": {
		{
			Name:           "Airbnb",
			Valuation:      85.0,
			FoundedYear:    2008,
			Employees:      6900,
			Users:          150000000,
			MarketSegments: []string{"travel", "consumer", "hosts"},
			PricingModel:   "commission",
			KeyFeatures: []string{
				"search",
				"booking management",
				"payment processing",
				"customer reviews",
				"direct messaging",
				"personalized recommendations",
				"mobile app",
				"host analytics",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "search ranking", "dynamic pricing"},
		},
		{
			Name:           "Uber",
			Valuation:      150.0,
			FoundedYear:    2009,
			Employees:      32000,
			Users:          150000000,
			MarketSegments: []string{"transportation", "delivery", "consumer"},
			PricingModel:   "commission",
			KeyFeatures: []string{
				"real time tracking",
				"payment processing",
				"customer reviews",
				"dynamic pricing",
				"direct messaging",
				"mobile app",
				"notifications",
			},
			Technologies: []string{"machine learning", "geospatial systems", "dynamic pricing", "real-time sync"},
		},
		{
			Name:           "DoorDash",
			Valuation:      70.0,
			FoundedYear:    2013,
			Employees:      20000,
			Users:          37000000,
			MarketSegments: []string{"delivery", "restaurants", "consumer"},
			PricingModel:   "commission",
			KeyFeatures: []string{
				"real time tracking",
				"payment processing",
				"customer reviews",
				"search",
				"personalized recommendations",
				"mobile app",
				"notifications",
			},
			Technologies: []string{"machine learning", "geospatial systems", "recommendation engines", "cloud infrastructure"},
		},
		{
			Name:           "Fiverr",
			Valuation:      4.0,
			FoundedYear:    2010,
			Employees:      900,
			Users:          4200000,
			MarketSegments: []string{"freelance", "services", "smb"},
			PricingModel:   "commission",
			KeyFeatures: []string{
				"search",
				"payment processing",
				"customer reviews",
				"direct messaging",
				"seller analytics",
				"dispute resolution",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "search ranking", "rest apis"},
		},
	},
	"healthtech": {
		{
			Name:           "Teladoc",
			Valuation:      3.5,
			FoundedYear:    2002,
			Employees:      5000,
			Users:          90000000,
			MarketSegments: []string{"telemedicine", "enterprise", "consumer"},
			PricingModel:   "subscription",
			KeyFeatures: []string{
				"video consultations",
				"appointment scheduling",
				"electronic health records",
				"prescription management",
				"compliance tooling",
				"mobile app",
				"notifications",
			},
			Technologies: []string{"cloud infrastructure", "webrtc", "machine learning", "hipaa compliance"},
		},
		{
			Name:           "Oscar Health",
			Valuation:      7.0,
			FoundedYear:    2012,
			Employees:      3000,
			Users:          1500000,
			MarketSegments: []string{"insurance", "consumer"},
			PricingModel:   "subscription",
			KeyFeatures: []string{
				"claims processing",
				"appointment scheduling",
				"electronic health records",
				"dashboard analytics",
				"mobile app",
				"direct messaging",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "data pipelines", "rest apis"},
		},
		{
			Name:           "Epic Systems",
			Valuation:      14.0,
			FoundedYear:    1979,
			Employees:      13000,
			Users:          305000000,
			MarketSegments: []string{"hospitals", "enterprise"},
			PricingModel:   "license",
			KeyFeatures: []string{
				"electronic health records",
				"appointment scheduling",
				"prescription management",
				"claims processing",
				"compliance tooling",
				"api access",
				"audit logging",
			},
			Technologies: []string{"interoperability standards", "machine learning", "on-premise deployment", "hipaa compliance"},
		},
		{
			Name:           "Calm",
			Valuation:      2.2,
			FoundedYear:    2012,
			Employees:      400,
			Users:          4000000,
			MarketSegments: []string{"wellness", "consumer", "enterprise"},
			PricingModel:   "freemium",
			KeyFeatures: []string{
				"personalized recommendations",
				"content library",
				"progress tracking",
				"mobile app",
				"notifications",
				"offline access",
			},
			Technologies: []string{"cloud infrastructure", "machine learning", "mobile first", "cdn"},
		},
	},
}
