// Package report assembles the research document: a fixed sequence of
// sections combining static narrative, computed model figures and the price
// chart, rendered into a single PDF.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aequitas/internal/models"
	"github.com/ternarybob/aequitas/internal/services/pdf"
)

// Input carries everything the composer needs for one report.
type Input struct {
	Meta        models.ReportMeta
	Data        *models.MarketData
	Valuation   *models.ValuationResult
	Performance models.Performance
	Chart       []byte // nil when the price history fetch failed
}

// Service composes report documents.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new report service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

type section struct {
	name   string
	render func(doc *pdf.Document) error
}

// Compose builds the document in the fixed section order. The section list is
// constructed once; rendering never mutates the input.
func (s *Service) Compose(in Input) (*pdf.Document, error) {
	c := &composer{in: in}
	doc := pdf.NewDocument(in.Meta)

	sections := []section{
		{"cover", c.cover},
		{"executive summary", c.executiveSummary},
		{"financial model", c.financialModel},
		{"company overview", c.companyOverview},
		{"financial analysis", c.financialAnalysis},
		{"competitive landscape", c.competitiveLandscape},
		{"valuation", c.valuation},
		{"recommendation", c.recommendation},
		{"risk factors", c.riskFactors},
		{"disclaimers", c.disclaimers},
	}

	for _, sec := range sections {
		if err := sec.render(doc); err != nil {
			return nil, fmt.Errorf("failed to render %s section: %w", sec.name, err)
		}
		s.logger.Debug().Str("section", sec.name).Msg("section rendered")
	}
	return doc, nil
}

type composer struct {
	in Input
}

func (c *composer) cover(doc *pdf.Document) error {
	meta := c.in.Meta
	snap := c.in.Data.Primary
	val := c.in.Valuation

	doc.AddPage()
	title := pdf.DefaultStyle().WithBold(true)

	doc.CenteredLine("", 20, title)
	doc.CenteredLine(meta.CompanyName, 15, title.WithSize(24))
	doc.CenteredLine(fmt.Sprintf("(%s: %s)", meta.Exchange, meta.Ticker), 10, title.WithSize(18))
	doc.Spacer(10)
	doc.CenteredLine("EQUITY RESEARCH REPORT", 10, title.WithSize(16))
	doc.Spacer(5)

	body := pdf.DefaultStyle().WithSize(12)
	doc.CenteredLine(fmt.Sprintf("Report Date: %s", meta.GeneratedAt.Format("January 2, 2006")), 8, body)
	doc.CenteredLine(fmt.Sprintf("Rating: %s", meta.Rating), 8, body)
	doc.CenteredLine(fmt.Sprintf("Target Price: %s", money(val.TargetPrice)), 8, body)
	doc.CenteredLine(fmt.Sprintf("Current Price: %s", money(snap.CurrentPrice)), 8, body)
	doc.CenteredLine(fmt.Sprintf("Upside Potential: %.1f%%", val.Upside), 8, body)
	doc.CenteredLine(fmt.Sprintf("Market Cap: %s", billions(snap.MarketCap)), 8, body)
	return nil
}

func (c *composer) executiveSummary(doc *pdf.Document) error {
	doc.AddPage()
	doc.SectionTitle("EXECUTIVE SUMMARY")

	doc.SubsectionTitle("Sector Investment Rationale")
	if err := doc.Body(sectorRationale); err != nil {
		return err
	}

	doc.Spacer(5)
	doc.SubsectionTitle(fmt.Sprintf("Investment Thesis: %s", c.in.Meta.CompanyName))
	if err := doc.Body(investmentThesis); err != nil {
		return err
	}
	doc.Footnote("Sources: Company filings, consensus estimates, clinical trial data (SURMOUNT-1, SURPASS-2)")

	doc.Spacer(3)
	doc.SubsectionTitle("Key Investment Points:")
	return doc.Body(keyInvestmentPoints)
}

func (c *composer) financialModel(doc *pdf.Document) error {
	val := c.in.Valuation

	doc.AddPage()
	doc.SectionTitle("FINANCIAL MODEL & FORECASTS")

	doc.SubsectionTitle(fmt.Sprintf("Revenue Forecast (%d-%d)", val.Projections[0].Year, val.Projections[len(val.Projections)-1].Year))
	revenue := pdf.Table{
		Widths:   []float64{50, 60, 60},
		Header:   []string{"Year", "Total Revenue ($B)", "YoY Growth"},
		Centered: true,
	}
	for _, p := range val.Projections {
		revenue.Rows = append(revenue.Rows, []string{p.Label, fmt.Sprintf("%.1f", p.Revenue), fmt.Sprintf("%.0f%%", p.Growth*100)})
	}
	doc.Table(revenue)

	if err := doc.Body(revenueModelNotes); err != nil {
		return err
	}
	doc.Footnote("Sources: Company guidance, consensus estimates, IQVIA prescription data")

	doc.Spacer(3)
	doc.SubsectionTitle("GLP-1 Segment Modeling")
	segment := pdf.Table{
		Widths:   []float64{50, 60, 60},
		Header:   []string{"Year", "GLP-1 Revenue ($B)", "% of Total Revenue"},
		Centered: true,
	}
	for _, p := range val.Projections {
		segment.Rows = append(segment.Rows, []string{p.Label, fmt.Sprintf("%.1f", p.SegmentRev), fmt.Sprintf("%.0f%%", p.SegmentShare*100)})
	}
	doc.Table(segment)

	if err := doc.Body(segmentModelNotes); err != nil {
		return err
	}
	doc.Footnote("Sources: SURMOUNT-1, SURPASS-2 trial data; company manufacturing guidance; TAM analysis")

	doc.Spacer(3)
	doc.SubsectionTitle("EPS Forecast")
	eps := pdf.Table{
		Widths:   []float64{50, 60, 60},
		Header:   []string{"Year", "EPS ($)", "Op Margin"},
		Centered: true,
	}
	for _, p := range val.Projections {
		eps.Rows = append(eps.Rows, []string{p.Label, fmt.Sprintf("%.2f", p.EPS), fmt.Sprintf("%.0f%%", p.Margin*100)})
	}
	doc.Table(eps)

	return doc.Body(epsModelNotes)
}

func (c *composer) companyOverview(doc *pdf.Document) error {
	doc.AddPage()
	doc.SectionTitle("COMPANY OVERVIEW")

	doc.SubsectionTitle("Business Model & GLP-1 Franchise")
	if err := doc.Body(businessModel); err != nil {
		return err
	}
	doc.Footnote("Sources: SURMOUNT-1 (NCT04184622), SURPASS-2 (NCT03987919) - NEJM publications")
	doc.Spacer(3)
	if err := doc.Body(marketPosition); err != nil {
		return err
	}
	doc.Footnote("Sources: IQVIA prescription data, company filings, FDA/EMA approvals")

	doc.Spacer(3)
	doc.SubsectionTitle("GLP-1 Market: Capacity, Supply/Demand, and Payor Dynamics")
	if err := doc.Body(capacityDynamics); err != nil {
		return err
	}
	doc.Footnote("Sources: Company capital allocation guidance, manufacturing facility announcements")
	doc.Spacer(3)
	if err := doc.Body(payorDynamics); err != nil {
		return err
	}
	doc.Footnote("Sources: CMS coverage policies, commercial payor formularies, SELECT trial (NEJM 2023)")
	doc.Spacer(3)
	if err := doc.Body(cvotOutlook); err != nil {
		return err
	}
	doc.Footnote("Sources: SELECT trial (NEJM 2023), SURMOUNT-MMO (NCT05556512)")
	return nil
}

func (c *composer) financialAnalysis(doc *pdf.Document) error {
	snap := c.in.Data.Primary

	doc.AddPage()
	doc.SectionTitle("FINANCIAL ANALYSIS")

	if c.in.Chart != nil {
		doc.SubsectionTitle("Price Performance Chart")
		if err := doc.Image(c.in.Chart, "price_chart", 180); err != nil {
			return err
		}
		doc.AddPage()
		doc.SectionTitle("FINANCIAL ANALYSIS (continued)")
	}

	doc.SubsectionTitle("Historical Financial Metrics (TTM)")
	doc.Spacer(5)
	metrics := pdf.Table{
		Widths:   []float64{70, 50, 50},
		Aligns:   []string{"L", "C", "C"},
		Header:   []string{"Metric", "Value", "Trend"},
		Centered: true,
		Rows: [][]string{
			{"Revenue Growth (YoY)", fmt.Sprintf("%.1f%%", snap.RevenueGrowth*100), "Above peer average"},
			{"EPS Growth (YoY)", fmt.Sprintf("%.0f%%+", snap.EarningsGrowth*100), "Strong expansion"},
			{"P/E Ratio (TTM)", fmt.Sprintf("%.1fx", snap.TrailingPE), "Premium to peers"},
			{"ROE", fmt.Sprintf("%.1f%%", snap.ReturnOnEquity*100), "High return on equity"},
			{"Operating Margin", fmt.Sprintf("%.1f%%", snap.OperatingMargin*100), "Expanding"},
			{"Market Cap", billions(snap.MarketCap), "Current"},
		},
	}
	doc.Table(metrics)
	return nil
}

func (c *composer) competitiveLandscape(doc *pdf.Document) error {
	snap := c.in.Data.Primary

	doc.AddPage()
	doc.SectionTitle("COMPETITIVE LANDSCAPE")
	doc.SubsectionTitle("Peer Comparison")

	peers := pdf.Table{
		Widths: []float64{50, 35, 35, 35, 35},
		Aligns: []string{"L", "C", "C", "C", "C"},
		Header: []string{"Company", "Revenue Growth", "P/E Ratio", "ROE", "Key Focus"},
		Rows: [][]string{
			{fmt.Sprintf("%s (%s)", snap.Name, snap.Ticker), approxPct(snap.RevenueGrowth), approxMultiple(snap.TrailingPE), approxPct(snap.ReturnOnEquity), snap.Focus},
		},
	}
	// Failed peers are already filtered out of the fetch result; the table
	// simply shows whoever survived.
	for _, p := range c.in.Data.Peers {
		peers.Rows = append(peers.Rows, []string{
			fmt.Sprintf("%s (%s)", p.Name, p.Ticker),
			approxPct(p.RevenueGrowth),
			approxMultiple(p.TrailingPE),
			approxPct(p.ReturnOnEquity),
			p.Focus,
		})
	}
	doc.Table(peers)

	doc.Spacer(3)
	doc.SubsectionTitle("GLP-1 Competitive Position")
	if err := doc.Body(competitivePosition); err != nil {
		return err
	}
	doc.Footnote("Sources: SURPASS-2 trial, company pipeline disclosures")
	return nil
}

func (c *composer) valuation(doc *pdf.Document) error {
	val := c.in.Valuation
	base := val.Base()

	doc.AddPage()
	doc.SectionTitle("VALUATION ANALYSIS")

	doc.SubsectionTitle("Price Target Methodology")
	methodology := fmt.Sprintf(
		"Our %s target price is derived from a probability-weighted scenario analysis applying forward "+
			"P/E multiples to %s EPS estimates. Base case assumes %.0fx %s EPS of %s, resulting in %s. "+
			"This multiple reflects: (1) Growth normalization from current elevated levels, (2) Premium "+
			"justified by GLP-1 market position, (3) Comparison to historical pharma growth stock multiples.",
		money(val.TargetPrice), val.ScenarioLabel, base.Multiple, val.ScenarioLabel,
		money(base.EPS), money(base.TargetPrice))
	if err := doc.Body(methodology); err != nil {
		return err
	}
	doc.Spacer(3)
	if err := doc.Body(multipleRationale); err != nil {
		return err
	}

	doc.Spacer(3)
	doc.SubsectionTitle("Scenario Analysis")
	scenarios := pdf.Table{
		Widths:   []float64{40, 40, 40, 50},
		Header:   []string{"Scenario", fmt.Sprintf("%s EPS", val.ScenarioLabel), "P/E Multiple", "Target Price"},
		Centered: true,
	}
	for _, sc := range val.Scenarios {
		scenarios.Rows = append(scenarios.Rows, []string{
			fmt.Sprintf("%s (%.0f%%)", sc.Name, sc.Probability*100),
			money(sc.EPS),
			fmt.Sprintf("%.0fx", sc.Multiple),
			money(sc.TargetPrice),
		})
	}
	doc.Table(scenarios)

	weighting := fmt.Sprintf(
		"Probability-weighted target: (%s x %.0f%%) + (%s x %.0f%%) + (%s x %.0f%%) = %s. "+
			"This represents %.1f%% upside from current price of %s.",
		money(val.Bull().TargetPrice), val.Bull().Probability*100,
		money(base.TargetPrice), base.Probability*100,
		money(val.Bear().TargetPrice), val.Bear().Probability*100,
		money(val.TargetPrice), val.Upside, money(val.CurrentPrice))
	if err := doc.Body(weighting); err != nil {
		return err
	}

	doc.Spacer(3)
	doc.SubsectionTitle("Bull Case Assumptions:")
	if err := doc.Body(bullAssumptions); err != nil {
		return err
	}

	doc.Spacer(3)
	doc.SubsectionTitle("Bear Case Assumptions:")
	return doc.Body(bearAssumptions)
}

func (c *composer) recommendation(doc *pdf.Document) error {
	val := c.in.Valuation
	perf := c.in.Performance

	doc.AddPage()
	doc.SectionTitle("INVESTMENT RECOMMENDATION")

	rating := pdf.DefaultStyle().WithBold(true).WithSize(16).WithText(pdf.Positive)
	doc.CenteredLine(fmt.Sprintf("RATING: %s", c.in.Meta.Rating), 10, rating)
	doc.Spacer(5)

	bold := pdf.DefaultStyle().WithBold(true).WithSize(12)
	doc.Line(fmt.Sprintf("Target Price: %s", money(val.TargetPrice)), 8, bold)
	doc.Line(fmt.Sprintf("Current Price: %s", money(val.CurrentPrice)), 8, bold)
	doc.Line(fmt.Sprintf("Upside Potential: %.1f%%", val.Upside), 8, bold)
	if perf.HasYTD {
		doc.Line(fmt.Sprintf("YTD Performance: %.1f%%", perf.YTD), 8, bold)
	}
	if perf.HasOneYr {
		doc.Line(fmt.Sprintf("1-Year Performance: %.1f%%", perf.OneYear), 8, bold)
	}

	doc.Spacer(5)
	doc.SubsectionTitle("Investment Rationale:")
	return doc.Body(investmentRationale)
}

func (c *composer) riskFactors(doc *pdf.Document) error {
	doc.AddPage()
	doc.SectionTitle("RISK FACTORS & SENSITIVITY ANALYSIS")
	doc.SubsectionTitle("Key Risks with Quantified Impact:")

	for _, risk := range riskFactors {
		if err := doc.Body(risk); err != nil {
			return err
		}
		doc.Spacer(2)
	}
	return nil
}

func (c *composer) disclaimers(doc *pdf.Document) error {
	doc.AddPage()
	doc.SectionTitle("DISCLAIMERS & DATA SOURCES")

	italic := pdf.DefaultStyle().WithItalic(true).WithSize(9)
	doc.Text(disclaimerText, italic)
	doc.Spacer(3)
	doc.Line("Data Sources:", 6, pdf.DefaultStyle().WithBold(true))
	doc.Text(dataSources, italic)
	return nil
}

// Formatting helpers. Prices keep cents, large figures are humanized, and the
// peer table uses approximate notation matching sell-side convention.

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

func billions(v float64) string {
	return fmt.Sprintf("$%.1fB", v/1e9)
}

func approxPct(frac float64) string {
	if frac == 0 {
		return "n/a"
	}
	return fmt.Sprintf("~%.0f%%", frac*100)
}

func approxMultiple(v float64) string {
	if v == 0 {
		return "n/a"
	}
	return fmt.Sprintf("~%.0fx", v)
}
