package pipeline

import "github.com/dloza02/dlo-creative-lab/internal/fetch"

// sampleItems is the built-in fallback shown when every source fails, so
// the reader never faces an empty screen purely because of an upstream
// outage. They flow through the same normalize/classify path as live
// items.
var sampleItems = []fetch.RawItem{
	{
		Title:       "Midjourney becomes a daily sketching tool in design studios",
		Description: "Architects describe how text-to-image models replaced mood boards during early concept work.",
		Link:        "https://www.design-pulse.com/2025/midjourney-sketching",
		GUID:        "https://www.design-pulse.com/2025/midjourney-sketching",
		PubDate:     "Mon, 03 Mar 2025 09:00:00 +0000",
	},
	{
		Title:       "AI rendering engines close in on real-time archviz",
		Description: "A new wave of neural renderers produces client-ready visualizations in seconds instead of hours.",
		Link:        "https://www.design-pulse.com/2025/ai-realtime-archviz",
		GUID:        "https://www.design-pulse.com/2025/ai-realtime-archviz",
		PubDate:     "Sun, 02 Mar 2025 14:30:00 +0000",
	},
	{
		Title:       "Generative floor plans arrive in mainstream BIM suites",
		Description: "Machine learning assistants now propose compliant floor plan variants directly inside BIM workflows.",
		Link:        "https://www.design-pulse.com/2025/generative-floorplans-bim",
		GUID:        "https://www.design-pulse.com/2025/generative-floorplans-bim",
		PubDate:     "Sat, 01 Mar 2025 08:15:00 +0000",
	},
	{
		Title:       "Interior designers test AI staging for rental listings",
		Description: "Virtual staging with diffusion models cuts photography costs for furniture-free interiors.",
		Link:        "https://www.design-pulse.com/2025/ai-interior-staging",
		GUID:        "https://www.design-pulse.com/2025/ai-interior-staging",
		PubDate:     "Fri, 28 Feb 2025 17:45:00 +0000",
	},
	{
		Title:       "Funding round values AI design startup at $400M",
		Description: "Investors keep betting on artificial intelligence for the built environment despite a cooling market.",
		Link:        "https://www.design-pulse.com/2025/ai-design-funding",
		GUID:        "https://www.design-pulse.com/2025/ai-design-funding",
		PubDate:     "Thu, 27 Feb 2025 11:20:00 +0000",
	},
}
