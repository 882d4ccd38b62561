// internal/knowledge/companies.go
package knowledge

import "career-pivot/internal/models"

// Canonical directory cities.
const (
	CityBengaluru = "Bengaluru"
	CityMumbai    = "Mumbai"
	CityDelhiNCR  = "Delhi NCR"
	CityRemote    = "Remote"

	// CategoryAny is the catch-all role category of a city.
	CategoryAny = "Any"
)

func company(name, tier, url string, tags ...string) models.Company {
	return models.Company{Name: name, Tier: tier, Tags: tags, URL: url}
}

func defaultCompanies() map[string]map[string][]models.Company {
	return map[string]map[string][]models.Company{
		CityBengaluru: {
			"Product Manager": {
				company("Flipkart", "Tier 1", "https://www.flipkartcareers.com/", "E-commerce", "High Scale"),
				company("Swiggy", "Tier 1", "https://careers.swiggy.com/", "Food Tech", "Hyperlocal"),
				company("Razorpay", "Tier 1", "https://razorpay.com/jobs/", "Fintech", "B2B"),
				company("Zerodha", "Tier 1", "https://zerodha.com/careers", "Fintech", "Bootstrapped"),
				company("Cred", "Tier 1", "https://careers.cred.club/", "Fintech", "Design-first"),
				company("Udaan", "Tier 2", "https://udaan.com/careers", "B2B E-commerce"),
				company("PhonePe", "Tier 1", "https://www.phonepe.com/careers/", "Fintech"),
			},
			"Software Engineer": {
				company("Google", "MNC", "https://careers.google.com/", "Search", "Cloud"),
				company("Microsoft", "MNC", "https://careers.microsoft.com/", "Cloud", "AI"),
				company("Amazon", "MNC", "https://www.amazon.jobs/", "E-commerce", "AWS"),
				company("Postman", "Unicorn", "https://www.postman.com/careers/", "DevTools", "API"),
				company("Atlassian", "MNC", "https://www.atlassian.com/company/careers", "SaaS", "Collaboration"),
			},
			"Data Scientist": {
				company("Fractal Analytics", "Specialized", "https://fractal.ai/careers/", "AI/ML Consult"),
				company("InMobi", "Unicorn", "https://www.inmobi.com/company/careers/", "AdTech", "Big Data"),
				company("Target", "MNC", "https://jobs.target.com/", "Retail Analytics"),
				company("Walmart Global Tech", "MNC", "https://careers.walmart.com/", "Retail Tech"),
			},
		},
		CityMumbai: {
			"Product Manager": {
				company("Dream11", "Unicorn", "https://about.dream11.com/careers", "Gaming", "Sports"),
				company("Jio", "Conglomerate", "https://careers.jio.com/", "Telecom", "Digital"),
				company("Nykaa", "Unicorn", "https://www.nykaa.com/careers", "E-commerce", "Fashion"),
				company("BookMyShow", "Established", "https://in.bookmyshow.com/careers", "Entertainment"),
			},
			"Finance": {
				company("HDFC Bank", "Bank", "https://www.hdfcbank.com/personal/about-us/careers", "Banking"),
				company("ICICI Bank", "Bank", "https://www.icicicareers.com/", "Banking"),
				company("Axis Bank", "Bank", "https://www.axisbank.com/careers", "Banking"),
			},
		},
		CityDelhiNCR: {
			"Product Manager": {
				company("Zomato", "Unicorn", "https://www.zomato.com/careers", "Food Tech"),
				company("Paytm", "Unicorn", "https://paytm.com/careers", "Fintech"),
				company("MakeMyTrip", "Established", "https://www.makemytrip.com/careers/", "Travel"),
				company("PolicyBazaar", "Unicorn", "https://www.policybazaar.com/careers/", "InsurTech"),
				company("Urban Company", "Unicorn", "https://www.urbancompany.com/careers", "Services"),
			},
		},
		CityRemote: {
			CategoryAny: {
				company("GitLab", "Remote-First", "https://about.gitlab.com/jobs/", "DevOps"),
				company("Automattic", "Remote-First", "https://automattic.com/work-with-us/", "WordPress"),
				company("Doist", "Remote-First", "https://doist.com/careers", "Productivity"),
				company("Zapier", "Remote-First", "https://zapier.com/jobs", "Automation"),
				company("Canonical", "Remote-First", "https://canonical.com/careers", "Linux"),
			},
		},
	}
}
