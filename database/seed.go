package database

import (
	"plumber-backend/logger"
	areaModel "plumber-backend/models/area"
	quoteModel "plumber-backend/models/quote"
	serviceModel "plumber-backend/models/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed populates catalog data when the tables are empty. Safe to run on
// every start; existing rows are left alone.
func Seed(db *gorm.DB) error {
	if err := seedServices(db); err != nil {
		return err
	}
	if err := seedServiceAreas(db); err != nil {
		return err
	}
	if err := seedCalculators(db); err != nil {
		return err
	}
	if err := seedFAQs(db); err != nil {
		return err
	}
	if err := seedTrustBadges(db); err != nil {
		return err
	}
	logger.Success("Seed data verified")
	return nil
}

func seedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&serviceModel.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []serviceModel.Service{
		{Name: "Burst Pipe Repair", Description: "Emergency burst pipe repair and replacement services. We respond quickly to minimize water damage and restore your plumbing system.", PriceRange: "$150 - $500", Icon: "exclamation-triangle", IsEmergency: true, IsActive: true},
		{Name: "Camera Inspection", Description: "Professional drain and sewer line camera inspection to identify blockages, damage, and potential issues before they become major problems.", PriceRange: "$200 - $400", Icon: "cog", IsActive: true},
		{Name: "Drain Cleaning", Description: "Professional drain cleaning services for kitchen sinks, bathroom drains, and main sewer lines. Fast and effective solutions.", PriceRange: "$100 - $300", Icon: "tint", IsActive: true},
		{Name: "Faucet Repair & Installation", Description: "Complete faucet repair and installation services for kitchen and bathroom fixtures. Quality workmanship guaranteed.", PriceRange: "$80 - $250", Icon: "wrench", IsActive: true},
		{Name: "Pipe Installation", Description: "Professional pipe installation and replacement services. We work with all types of piping materials and systems.", PriceRange: "$200 - $800", Icon: "tools", IsActive: true},
		{Name: "Water Heater Services", Description: "Water heater installation, repair, and maintenance for tank and tankless systems.", PriceRange: "$150 - $1200", Icon: "fire", IsActive: true},
		{Name: "Emergency Plumbing", Description: "24/7 emergency plumbing response for floods, leaks, and failures that cannot wait.", PriceRange: "$150 - $600", Icon: "exclamation-triangle", IsEmergency: true, IsActive: true},
		{Name: "Sump Pump Services", Description: "Sump pump installation, repair, and seasonal maintenance to keep basements dry.", PriceRange: "$250 - $900", Icon: "home", IsActive: true},
	}
	if err := db.Create(&services).Error; err != nil {
		return err
	}
	logger.Info("Seeded services catalog")
	return nil
}

func seedServiceAreas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&areaModel.ServiceArea{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	areas := []areaModel.ServiceArea{
		{Name: "Toronto", Phone: "+16475518342", Email: "toronto@sproplumbing.ca", Address: "123 Queen St W", City: "Toronto", Province: "Ontario", PostalCode: "M5H 2M9", IsActive: true},
		{Name: "North York", Phone: "+16475518342", Email: "northyork@sproplumbing.ca", Address: "4711 Yonge St", City: "North York", Province: "Ontario", PostalCode: "M2N 6K8", IsActive: true},
		{Name: "Scarborough", Phone: "+16475518342", Email: "scarborough@sproplumbing.ca", Address: "300 Borough Dr", City: "Scarborough", Province: "Ontario", PostalCode: "M1P 4P5", IsActive: true},
		{Name: "Etobicoke", Phone: "+16475518342", Email: "etobicoke@sproplumbing.ca", Address: "5100 Dundas St W", City: "Etobicoke", Province: "Ontario", PostalCode: "M9A 1C2", IsActive: true},
		{Name: "Mississauga", Phone: "+16475518342", Email: "mississauga@sproplumbing.ca", Address: "100 City Centre Dr", City: "Mississauga", Province: "Ontario", PostalCode: "L5B 2C9", IsActive: true},
		{Name: "Hamilton", Phone: "+16475518342", Email: "hamilton@sproplumbing.ca", Address: "2 King St W", City: "Hamilton", Province: "Ontario", PostalCode: "L8P 1A1", IsActive: true},
	}
	if err := db.Create(&areas).Error; err != nil {
		return err
	}
	logger.Info("Seeded service areas")
	return nil
}

func seedCalculators(db *gorm.DB) error {
	var count int64
	if err := db.Model(&quoteModel.QuoteCalculator{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type calcSpec struct {
		service string
		base    string
		rate    string
		hours   string
		options []quoteModel.QuoteOption
	}

	specs := []calcSpec{
		{
			service: "Drain Cleaning", base: "100.00", rate: "85.00", hours: "1.5",
			options: []quoteModel.QuoteOption{
				{Name: "Camera Inspection", Description: "Inspect the line before and after cleaning", PriceModifier: dec("125.00"), Order: 1},
				{Name: "Main Line Auger", Description: "Full main sewer line auger service", PriceModifier: dec("200.00"), Order: 2},
				{Name: "Enzyme Treatment", Description: "Preventative enzyme treatment", PriceModifier: dec("45.00"), Order: 3},
			},
		},
		{
			service: "Water Heater Services", base: "150.00", rate: "85.00", hours: "2.0",
			options: []quoteModel.QuoteOption{
				{Name: "Tank Removal", Description: "Disconnect and haul away the old tank", PriceModifier: dec("125.00"), Order: 1},
				{Name: "Expansion Tank", Description: "Install a thermal expansion tank", PriceModifier: dec("200.00"), Order: 2},
				{Name: "Permit Handling", Description: "Municipal permit filing", PriceModifier: dec("90.00"), IsRequired: true, Order: 3},
			},
		},
		{
			service: "Faucet Repair & Installation", base: "80.00", rate: "85.00", hours: "1.0",
			options: []quoteModel.QuoteOption{
				{Name: "Fixture Supply", Description: "We supply a mid-range fixture", PriceModifier: dec("150.00"), Order: 1},
				{Name: "Shutoff Valve Replacement", Description: "Replace worn under-sink shutoff valves", PriceModifier: dec("60.00"), Order: 2},
			},
		},
	}

	for _, spec := range specs {
		var svc serviceModel.Service
		if err := db.Where("name = ?", spec.service).First(&svc).Error; err != nil {
			// Calculator seeds depend on the service catalog; skip quietly
			// if a named service is absent.
			continue
		}
		calc := quoteModel.QuoteCalculator{
			ServiceID:        svc.ID,
			BasePrice:        dec(spec.base),
			LaborRatePerHour: dec(spec.rate),
			EstimatedHours:   dec(spec.hours),
			IsActive:         true,
			Options:          spec.options,
		}
		if err := db.Create(&calc).Error; err != nil {
			return err
		}
	}
	logger.Info("Seeded quote calculators")
	return nil
}

func seedFAQs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&serviceModel.FAQ{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	faqs := []serviceModel.FAQ{
		{Question: "Do you offer 24/7 emergency service?", Answer: "Yes. Emergency calls are answered around the clock, every day of the year.", Order: 1, IsActive: true},
		{Question: "Are your plumbers licensed and insured?", Answer: "All of our plumbers are fully licensed and insured in Ontario.", Order: 2, IsActive: true},
		{Question: "How quickly can you respond to an emergency?", Answer: "Within the GTA we typically arrive within 1-2 hours of an emergency call.", Order: 3, IsActive: true},
		{Question: "Do you provide upfront pricing?", Answer: "Yes, we quote before work begins. The online calculator gives a non-binding estimate and a staff member confirms the final quote.", Order: 4, IsActive: true},
		{Question: "What areas do you serve?", Answer: "We serve Toronto and the surrounding GTA, including North York, Scarborough, Etobicoke, Mississauga, and Hamilton.", Order: 5, IsActive: true},
	}
	if err := db.Create(&faqs).Error; err != nil {
		return err
	}
	logger.Info("Seeded FAQs")
	return nil
}

func seedTrustBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&areaModel.TrustBadge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	badges := []areaModel.TrustBadge{
		{Name: "Licensed & Insured", Icon: "shield", Description: "Fully licensed and insured in Ontario", Order: 1, IsActive: true},
		{Name: "Satisfaction Guaranteed", Icon: "thumbs-up", Description: "Workmanship guarantee on every job", Order: 2, IsActive: true},
		{Name: "Upfront Pricing", Icon: "tag", Description: "No surprises, quoted before we start", Order: 3, IsActive: true},
	}
	if err := db.Create(&badges).Error; err != nil {
		return err
	}
	logger.Info("Seeded trust badges")
	return nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
