package content

import "lumis/pkg/model"

var DefaultServices = []model.Service{
	{
		ID:          "svc1",
		Name:        "AI Agent Building",
		Description: "Custom AI agents that automate workflows, handle customer interactions, and drive intelligent decision-making.",
		Icon:        "brain",
	},
	{
		ID:          "svc2",
		Name:        "Automation Software",
		Description: "End-to-end automation solutions that eliminate repetitive tasks and streamline your business processes.",
		Icon:        "bot",
	},
	{
		ID:          "svc3",
		Name:        "Web Development",
		Description: "Modern, responsive websites and web applications built with cutting-edge technologies.",
		Icon:        "globe",
	},
	{
		ID:          "svc4",
		Name:        "DevOps & Cloud",
		Description: "Infrastructure automation, CI/CD pipelines, and cloud migration for scalable, reliable systems.",
		Icon:        "server",
	},
	{
		ID:          "svc5",
		Name:        "Database Solutions",
		Description: "Database design, optimization, migration, and maintenance for peak performance.",
		Icon:        "database",
	},
}

var DefaultTestimonials = []model.Testimonial{
	{
		ID:      "1",
		Name:    "Sarah Chen",
		Company: "TechFlow Inc.",
		Role:    "CTO",
		Content: "Lumis transformed our operations with their AI automation solutions. We reduced manual tasks by 70% and saw ROI within 3 months.",
		Rating:  5,
	},
	{
		ID:      "2",
		Name:    "Michael Rodriguez",
		Company: "ScaleUp Ventures",
		Role:    "CEO",
		Content: "Their DevOps expertise helped us achieve 99.9% uptime. The team is incredibly responsive and technically brilliant.",
		Rating:  5,
	},
	{
		ID:      "3",
		Name:    "Emily Watson",
		Company: "DataDrive Analytics",
		Role:    "VP Engineering",
		Content: "The AI agents Lumis built for us handle customer inquiries 24/7. Support costs down 50%, customer satisfaction up 40%.",
		Rating:  5,
	},
	{
		ID:      "4",
		Name:    "James Park",
		Company: "CloudFirst Solutions",
		Role:    "Director of IT",
		Content: "Database optimization and cloud migration was seamless. Lumis delivered on time and under budget. Highly recommend!",
		Rating:  5,
	},
	{
		ID:      "5",
		Name:    "Lisa Thompson",
		Company: "RetailPro",
		Role:    "COO",
		Content: "From website redesign to backend automation, Lumis handled everything professionally. Our e-commerce conversion rate doubled.",
		Rating:  5,
	},
}

var DefaultCaseStudies = []model.CaseStudy{
	{
		ID:        "cs1",
		Title:     "AI-Powered Customer Service Automation",
		Company:   "FinanceHub Global",
		Industry:  "Financial Services",
		Challenge: "Manual customer support handling 10,000+ daily inquiries with 48-hour response times.",
		Solution:  "Deployed intelligent AI agents with natural language processing, integrated with existing CRM systems.",
		Results: []string{
			"Response time reduced to under 5 minutes",
			"70% of inquiries resolved without human intervention",
			"Customer satisfaction improved by 45%",
			"$2M annual savings in support costs",
		},
		ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600",
		PDFFilename: "case_study_financehub.pdf",
	},
	{
		ID:        "cs2",
		Title:     "Cloud Infrastructure Modernization",
		Company:   "MedTech Innovations",
		Industry:  "Healthcare Technology",
		Challenge: "Legacy on-premise infrastructure causing reliability issues and compliance concerns.",
		Solution:  "Full cloud migration to AWS with HIPAA-compliant architecture and automated scaling.",
		Results: []string{
			"99.99% uptime achieved",
			"40% reduction in infrastructure costs",
			"Full HIPAA compliance maintained",
			"Deployment time reduced from weeks to hours",
		},
		ImageURL:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=600",
		PDFFilename: "case_study_medtech.pdf",
	},
	{
		ID:        "cs3",
		Title:     "E-Commerce Platform Optimization",
		Company:   "StyleNow Retail",
		Industry:  "E-Commerce",
		Challenge: "Slow website performance and poor mobile experience affecting sales conversion.",
		Solution:  "Complete frontend rebuild with React, database optimization, and CDN implementation.",
		Results: []string{
			"Page load time reduced by 65%",
			"Mobile conversion rate increased 120%",
			"Black Friday traffic handled seamlessly",
			"SEO rankings improved significantly",
		},
		ImageURL:    "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=600",
		PDFFilename: "case_study_stylenow.pdf",
	},
}

var DefaultBlogPosts = []model.BlogPost{
	{
		ID:       "blog1",
		Title:    "The Future of AI Agents in Business Automation",
		Excerpt:  "Discover how intelligent AI agents are revolutionizing business operations and what it means for your company's competitive edge.",
		Category: "AI & Automation",
		Author:   "Lumis Team",
		ImageURL: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600",
		Status:   model.BlogStatusComingSoon,
	},
	{
		ID:       "blog2",
		Title:    "DevOps Best Practices for Startups",
		Excerpt:  "Essential DevOps strategies that help startups scale efficiently while maintaining reliability and security.",
		Category: "DevOps",
		Author:   "Lumis Team",
		ImageURL: "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?w=600",
		Status:   model.BlogStatusComingSoon,
	},
	{
		ID:       "blog3",
		Title:    "Database Optimization: A Complete Guide",
		Excerpt:  "Learn proven techniques to optimize your database performance and reduce costs without compromising data integrity.",
		Category: "Database",
		Author:   "Lumis Team",
		ImageURL: "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=600",
		Status:   model.BlogStatusComingSoon,
	},
}

var DefaultTimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

// ReasonOptions are the choices of the contact form's reason select.
var ReasonOptions = []string{
	"New Project Inquiry",
	"Technical Consultation",
	"Partnership Opportunity",
	"General Question",
	"Other",
}
