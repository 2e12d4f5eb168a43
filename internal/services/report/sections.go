package report

// Static narrative bodies, written as markdown and rendered through the pdf
// package. Computed figures are interpolated by the composer where the text
// needs them.

const sectorRationale = `We believe the pharmaceutical sector offers attractive investment characteristics driven by demographic trends, defensive cash flow profiles, and technological innovation. Aging populations globally increase demand for chronic disease management, while healthcare spending has historically demonstrated relative inelasticity during economic downturns. Intellectual property protection and regulatory barriers to entry provide sustainable competitive advantages for innovative therapies.

However, the sector exhibits significant dispersion in growth and profitability. Evidence suggests a bifurcation between high-growth companies with transformative pipelines and legacy players facing portfolio declines. We focus on companies demonstrating: (1) strong R&D productivity, (2) exposure to high-growth therapeutic areas, (3) superior profitability metrics, and (4) sustainable competitive advantages.`

const investmentThesis = `We view Eli Lilly as a high-quality large-cap pharmaceutical company with exposure to the GLP-1 obesity and diabetes market. The company has demonstrated strong revenue growth (~32% YoY) and EPS expansion (>100% YoY) that significantly exceeds typical big pharma growth rates. LLY's GLP-1 franchise (Mounjaro for diabetes, Zepbound for obesity) represents a substantial portion of revenue growth, with clinical trial data suggesting superior efficacy versus semaglutide in head-to-head studies.

Beyond GLP-1, LLY maintains a diversified portfolio including oncology (Verzenio), immunology (Taltz, Olumiant), and neuroscience assets. The company demonstrates strong profitability metrics (ROE ~85%, operating margins ~21-22%) and balance sheet strength. While valuation appears demanding at ~52x trailing P/E, we believe forward estimates and growth trajectory may justify a premium versus peers for investors with appropriate risk tolerance.`

const keyInvestmentPoints = `- GLP-1 franchise represents significant revenue contribution with evidence of market share gains
- Revenue growth of ~32% and EPS growth >100% exceed peer averages
- Strong profitability metrics: operating margins ~21-22%, ROE ~85%
- Diversified pipeline beyond GLP-1 reduces single-product concentration risk
- U.S. market position with international expansion underway`

const revenueModelNotes = `Our revenue model assumes GLP-1 franchise (Mounjaro/Zepbound) drives the majority of growth, with contributions from Verzenio, Taltz, and other products. Assumptions reflect: (1) U.S. market share gains, (2) International expansion, (3) Capacity constraints limiting near-term growth, (4) Pricing pressure as market matures.`

const segmentModelNotes = `GLP-1 segment assumptions: Peak sales potential of $25-30B by 2027-2028 based on TAM analysis. U.S. obesity market (~100M eligible patients) and diabetes market (~30M T2D patients) support significant penetration. Capacity constraints may limit 2024-2025 growth; manufacturing expansion expected to alleviate by 2026.`

const epsModelNotes = `EPS assumptions reflect operating leverage from revenue growth, margin expansion from GLP-1 mix shift, and moderate share count changes. Operating margin expansion assumes: (1) Higher-margin GLP-1 products as % of mix, (2) Manufacturing scale benefits, (3) R&D efficiency, (4) Partially offset by pricing pressure over time.`

const businessModel = `Eli Lilly operates across diabetes, obesity, oncology, immunology, and neuroscience. The GLP-1 franchise consists of Mounjaro (tirzepatide) for type 2 diabetes and Zepbound (tirzepatide) for chronic weight management. Clinical trial data from SURMOUNT-1 and SURPASS-2 studies suggest tirzepatide demonstrates superior weight loss (up to 22.5% body weight reduction) and glucose control versus semaglutide.`

const marketPosition = `Tirzepatide's dual mechanism (GLP-1 and GIP receptor agonism) differentiates it from semaglutide. U.S. prescription data from IQVIA suggests LLY is gaining market share, though Novo Nordisk maintains first-mover advantage globally. International expansion is progressing with regulatory approvals in Europe and select Asian markets.`

const capacityDynamics = `Manufacturing capacity represents a key constraint. Both LLY and NVO are capacity-constrained for injectable GLP-1 formulations, with fill-finish facilities limiting near-term supply. LLY has announced significant manufacturing investments ($2.5B+ in 2024-2025) to expand capacity, with new facilities expected to come online in 2026-2027. Current supply/demand imbalance supports pricing power but may limit volume growth.`

const payorDynamics = `Payor coverage remains a key variable. Medicare coverage for obesity drugs is limited, though some commercial plans cover GLP-1s with prior authorization. Payor exclusions and step therapy requirements may impact patient access. As utilization scales, we expect increased payor pushback on pricing, potentially compressing margins over time. However, cardiovascular outcomes data (CVOT) from SELECT trial (semaglutide) and ongoing LLY CVOT may support broader coverage.`

const cvotOutlook = `Cardiovascular outcomes: SELECT trial demonstrated 20% reduction in major adverse cardiovascular events (MACE) for semaglutide in patients with established cardiovascular disease. LLY's SURMOUNT-MMO trial (tirzepatide CVOT) is ongoing with readout expected 2025-2026. Positive CVOT data could expand addressable market to cardiovascular risk reduction, significantly increasing TAM.`

const competitivePosition = `LLY's tirzepatide competes primarily with Novo Nordisk's semaglutide. Clinical data suggests tirzepatide demonstrates superior weight loss efficacy (22.5% vs ~15% in head-to-head studies). However, Novo maintains first-mover advantage globally and has established manufacturing capacity. Both companies face supply constraints, suggesting pricing power in near term. Future competition may emerge from oral formulations and next-generation compounds, though LLY's pipeline includes oral tirzepatide development.`

const multipleRationale = `We apply 35x forward P/E based on: (1) Historical precedent for high-growth pharma (e.g., Vertex during CFTR expansion traded 30-40x), (2) PEG ratio of ~1.4x (35x P/E / 25% growth), (3) Risk-adjusted discount from current 52x trailing multiple as growth moderates. This assumes continued execution but acknowledges valuation compression risk.`

const bullAssumptions = `- GLP-1 revenue exceeds expectations: 30%+ CAGR through 2027
- Operating margins expand to 27%+ by 2026
- Positive CVOT data expands addressable market
- Manufacturing capacity expansion ahead of schedule
- Multiple expansion to 40x as growth sustainability proven`

const bearAssumptions = `- GLP-1 growth slows to 20% CAGR (pricing pressure, competition)
- Operating margins compress to 22% (pricing, mix shift)
- Payor exclusions limit patient access
- Manufacturing delays constrain volume growth
- Multiple compression to 28x as growth moderates`

const investmentRationale = `1. GLP-1 franchise represents significant revenue contribution with evidence of market share gains
2. Revenue growth of ~32% and EPS expansion exceed peer averages
3. Strong profitability metrics: operating margins ~21-22%, ROE ~85%
4. Diversified pipeline beyond GLP-1 reduces concentration risk
5. Clinical data suggests superior efficacy versus semaglutide
6. U.S. market position with international expansion potential
7. Defensive characteristics: healthcare spending relatively inelastic`

var riskFactors = []string{
	`1. Valuation Risk: At ~52x trailing P/E, multiple compression risk is significant. If GLP-1 growth slows to 20% CAGR (vs. current 40%+), our bear case suggests target price of $950, representing -8% downside. Sensitivity: Every 100 bps slowdown in GLP-1 growth reduces target by ~$25.`,
	`2. Payer & Pricing Pressure: As GLP-1 utilization scales, payor pushback on pricing may compress margins. If operating margins compress 300 bps (from 25% to 22% by 2026), EPS impact is ~$2.50, reducing target by ~$88 (at 35x multiple). Sensitivity: Every 100 bps margin compression reduces target by ~$30.`,
	`3. Concentration Risk: GLP-1 represents ~45% of revenue, increasing to ~60% by 2026. Any negative data readout, safety signal, or competitive threat could impact stock disproportionately. Probability-weighted scenario suggests 15-20% downside risk in bear case.`,
	`4. Competition: Novo Nordisk's first-mover advantage and manufacturing capacity, plus potential new entrants, could erode market share. If LLY market share declines from 40% to 30% by 2027, revenue impact is ~$3B, reducing target by ~$105. Sensitivity: Every 5% share point loss reduces target by ~$20.`,
	`5. Regulatory Risk: FDA or international regulatory changes could impact approval timelines or labeling. Delayed CVOT readout or negative safety signal could compress multiple by 5-10x, reducing target by $175-350. Probability: Low (10-15%) but high impact.`,
	`6. Manufacturing Capacity: Supply constraints may limit volume growth. If capacity expansion delays by 12 months, 2026 revenue impact is ~$2B, reducing target by ~$70. Sensitivity: Every 6-month delay reduces target by ~$35.`,
	`7. Pipeline Execution: Beyond GLP-1, pipeline must deliver to justify premium. If key oncology or immunology assets fail, multiple compression of 3-5x is possible, reducing target by $105-175.`,
}

const disclaimerText = `This report is for informational purposes only and should not be considered as investment advice. Investing in securities involves risk of loss. Past performance is not indicative of future results. Investors should conduct their own research and consult with a financial advisor before making investment decisions.`

const dataSources = `- Company filings: SEC 10-K, 10-Q filings
- Clinical trials: ClinicalTrials.gov, NEJM publications
- Prescription data: IQVIA National Prescription Audit
- Consensus estimates: Bloomberg, FactSet
- Market data: EODHD, company investor relations
- Regulatory: FDA, EMA approval documents`
