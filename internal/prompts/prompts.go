// Package prompts holds the analysis instructions sent to the model. Each
// prompt requests a strict JSON (or line-oriented) output contract so the
// extraction layer has something deterministic to anchor on.
package prompts

import "fmt"

// EnergyActions asks for stationary energy actions with categories and
// evidence, as a JSON array.
const EnergyActions = `
You are provided with city sustainability reports (Climate Action Plans or similar documents).

Task Instructions:

Step 1: Identify and Extract Stationary Energy Actions
- Review each report carefully.
- List stationary energy actions explicitly described, clearly using a "verb + object" format (e.g., "Install solar panels," "Retrofit municipal buildings").

Step 2: Categorize Actions
- Assign each identified action explicitly to exactly one of these categories aligned with the GHG Protocol for Cities (GPC):
  - Solar Energy
  - Wind Energy
  - Geothermal
  - EV Infrastructure
  - Battery Storage
  - Building Retrofits
  - Lighting Efficiency
  - Energy Codes & Policy
  - Community Engagement
  - Grid Resilience
  - Other Energy Actions (specify clearly)

Step 3: Provide Evidence
- For each action, provide explicit evidence from the report (direct quote, document name, page number).

Step 4: Output JSON in this structure:

[
  {
    "Category": "Lighting Efficiency",
    "Action Description": "Replace incandescent bulbs with LEDs",
    "Document Name": "City_Report.pdf",
    "Page Number(s)": "12",
    "Village Name": "Aurora",
    "Report Date": "2021-06-01",
    "Evidence for Action": "Page 12: The city replaced traffic signals with LED lights to reduce power usage."
  }
]

If no stationary energy actions are explicitly identified in a document, return:
[{"note": "No stationary energy actions identified"}]

Respond with a single valid JSON array only, no markdown, no commentary.
`

// ScopeEmissions asks for scope 1/2/3 stationary energy inventory values
// with units and evidence, as a JSON array.
const ScopeEmissions = `
You are provided with city sustainability reports (Climate Action Plans or similar documents).

Task Instructions:
- Extract explicitly reported stationary energy emissions inventory values according to GHG Protocol scopes:
  - Scope 1: On-site fuel combustion
  - Scope 2: Grid-supplied electricity, heat, or steam
  - Scope 3: Upstream or downstream stationary energy emissions (if explicitly reported)
- Clearly state units used for each scope (e.g., metric tonnes CO2e [tCO2e], megawatt-hours [MWh]).
- Explicitly record the evidence for each emissions value and each unit.
- Additionally, extract and include the Village Name (name of the city/town/village) and the Report Date (year or full date if available from the report or metadata).

Output JSON in this structure:

[
  {
    "Village Name": "Aurora",
    "Report Date": "2021-05-01",
    "Document Name": "Aurora_Sustainability_Report.pdf",
    "Scope 1 Emissions": "3200",
    "Evidence for Scope 1 Emissions": "Page 12: Scope 1 emissions were estimated at 3200 tCO2e from onsite fuel usage.",
    "Scope 1 Units": "tCO2e",
    "Evidence for Scope 1 Units": "Page 12: Emissions reported in metric tonnes CO2 equivalent.",
    "Scope 2 Emissions": "4800",
    "Evidence for Scope 2 Emissions": "Page 13: Grid-based electricity resulted in 4800 tCO2e.",
    "Scope 2 Units": "tCO2e",
    "Evidence for Scope 2 Units": "Page 13: Grid electricity measured in tCO2e.",
    "Scope 3 Emissions": "1200",
    "Evidence for Scope 3 Emissions": "Page 15: Scope 3 emissions include purchased goods and services.",
    "Scope 3 Units": "tCO2e",
    "Evidence for Scope 3 Units": "Page 15: Report uses tCO2e for all indirect emissions.",
    "Total Stationary Emissions": "9200",
    "Total Units": "tCO2e"
  }
]

If no stationary energy emissions inventory values are explicitly identified, return:
[{"note": "No stationary energy emissions inventory values identified"}]

Respond with a single valid JSON array only, no markdown, no commentary.
`

// MaturityQuestionnaire scores a report against the stationary-energy
// maturity rubric, one JSON record per Yes/No question.
const MaturityQuestionnaire = `
You are provided with a set of Yes/No questions below, which you must answer strictly using information explicitly stated in a Climate Action Plan (CAP) or similar sustainability document, referred to as the "Source Document."

Instructions for Answering Each Question (JSON Output Required):
For each question, strictly follow these two steps, formatting your responses in the provided JSON structure:
- Step 1: Identify Relevant Text Snippet. Quote the exact text from the Source Document explicitly addressing the question. If the Source Document does not explicitly contain relevant information, write: "None explicitly stated."
- Step 2: Provide Your Answer and Justification. Answer "Yes" only if the quoted snippet explicitly provides the exact information requested. Otherwise, answer "No". Provide a brief justification explicitly referencing the quoted snippet and page number.

Important Guidelines:
- Explicit evidence means information clearly stated in the Source Document that directly addresses the substance of the question.
- Avoid inferring, interpreting, or extrapolating information.
- Remain objective, neutral, and consistent across all answers.
- Assign scores strictly: "Yes" = 1 point, "No" = 0 points.

JSON output example:
{
  "question_id": "1.1",
  "question_text": "Does the source document explicitly mention that the city has an emissions inventory?",
  "relevant_snippet": "The source document explicitly states that it is consistent with the GPC BASIC protocol.",
  "page_no": "20",
  "answer": "Yes",
  "justification": "The inventory is described on page 20 and follows the GPC BASIC protocol.",
  "score": 1
}

Important Instruction: Please respond with a single valid JSON array only, no markdown, no commentary, no formatting. Do not wrap the output in backticks or explain anything.

1. Emissions Inventory (Max: 7 points)
1.1 Does the source document explicitly mention that the city has an emissions inventory? (Yes=1 / No=0)
1.2 Does the source document explicitly mention if the city adopted the GPC (BASIC or BASIC+) to structure its emissions inventory? (Yes=1 / No=0)
1.3 Does the source document explicitly mention if the city's emissions inventory explicitly include Scope 1 stationary energy emissions (on-site fuel combustion)? (Yes=1 / No=0)
1.4 Does the source document explicitly mention if the city's emissions inventory explicitly include Scope 2 stationary energy emissions (grid-supplied electricity, heat, or steam)? (Yes=1 / No=0)
1.5 Does the source document explicitly mention if the city's emissions inventory explicitly state whether Scope 3 stationary energy emissions (e.g., upstream energy losses, imported fuels) are included or not? (Yes=1 / No=0)
1.6 Does the source document explicitly mention whether the emissions inventory disaggregates stationary energy emissions by sub-sector (e.g., residential, commercial, industrial)? (Yes=1 / No=0)
1.7 Does the source document explicitly mention whether the emissions inventory disaggregates stationary energy emissions by fuel type (e.g., electricity, natural gas, coal, renewables)? (Yes=1 / No=0)

2. Strategy Identification (Max: 7 points)
2.1 Does the source document explicitly mention the use of emissions modeling or scenario planning for stationary energy emissions reduction strategies? (Yes=1 / No=0)
2.2 Does the source document explicitly identify technological solutions (e.g., renewable energy, retrofitting, heat pumps)? (Yes=1 / No=0)
2.3 Does the source document explicitly identify non-technological solutions (e.g., policy changes, behavior change programs)? (Yes=1 / No=0)
2.4 Does the source document explicitly set GHG reduction targets specifically for stationary energy sub-sectors (e.g., residential buildings, commercial buildings, industrial facilities, or energy utilities)? (Yes=1 / No=0)
2.5 Does the source document explicitly address residual stationary energy emissions (e.g., offsets, negative emission strategies)? (Yes=1 / No=0)
2.6 Does the source document explicitly assess how climate risks (e.g., heatwaves, flooding) impact the stationary energy sector (demand or reliability)? (Yes=1 / No=0)
2.7 Does the source document explicitly identify adaptation strategies (e.g., resilient infrastructure, grid reliability enhancements) addressing climate risks specific to the stationary energy sector? (Yes=1 / No=0)

3. Action Prioritization & Detailing (Max: 6 points)
3.1 Does the source document explicitly have actions to reduce stationary energy emissions? (Yes=1 / No=0)
3.2 Does the source document explicitly prioritize stationary energy actions based on quantified or qualitatively stated GHG emissions reduction potential? (Yes=1 / No=0)
3.3 Does the source document explicitly document feasibility assessments (technical, financial, institutional, or political) for prioritized stationary energy actions? (Yes=1 / No=0)
3.4 Does the source document explicitly address equity by considering vulnerable communities (e.g., low-income housing) when prioritizing stationary energy actions? (Yes=1 / No=0)
3.5 Does the source document explicitly define the expected GHG or climate adaptation impact for each prioritized stationary energy action? (Yes=1 / No=0)
3.6 Does the source document explicitly identify responsible departments or governance structures for implementing prioritized stationary energy actions? (Yes=1 / No=0)

4. Monitoring, Evaluation & Reporting (MER) (Max: 5 points)
4.1 Does the source document explicitly establish Key Performance Indicators (KPIs) to monitor stationary energy actions (e.g., energy savings, buildings retrofitted, emissions reduced)? (Yes=1 / No=0)
4.2 Does the source document explicitly describe regular evaluations (annual, biennial, mid-term) of stationary energy actions? (Yes=1 / No=0)
4.3 Does the source document explicitly commit to publicly reporting progress on stationary energy actions (e.g., annual reports, dashboards)? (Yes=1 / No=0)
4.4 Does the source document explicitly state that monitoring data is used to revise or update the CAP or stationary energy strategies? (Yes=1 / No=0)
4.5 Does the source document explicitly describe data quality assurance procedures (validation or verification of stationary energy emission data)? (Yes=1 / No=0)
`

// ScoreExtraction pulls numeric section scores out of a previously scored
// analysis report, in a strict line-oriented format.
const ScoreExtraction = `
You are provided the text of a scored Climate Action Plan or related analysis report.
Extract the numeric scores for each of the 10 standard categories below based on the provided report content.

Use this format strictly in your response:
Community Name: <Name>
Section 1 (First Steps): X / 2
Section 2 (Governance): X / 1
Section 3 (Stakeholder & Community Engagement): X / 6
Section 4 (GHG Emissions Inventory): X / 3
Section 5 (Sustainability Risk Assessment): X / 7
Section 6 (City Needs Assessment): X / 2
Section 7 (Strategy Identification): X / 9
Section 8 (Action Prioritization & Detailing): X / 5
Section 9 (Equity & Inclusivity): X / 6
Section 10 (Monitoring, Evaluation & Reporting (MER)): X / 7
`

const classifyTemplate = `
Objective:
Classify the following energy mitigation action into the correct category based on the C40 Cities and Global Protocol for Community-Scale Greenhouse Gas Emission Inventories (GPC) framework.

The classification depends on the type of emissions the action mitigates (fuel combustion, electricity consumption, transmission losses, or fugitive emissions) and the sector or activity targeted by the action.

Categories for Classification:
I.1 Residential Buildings - fuel combustion, grid-supplied energy, or transmission and distribution losses in residential buildings.
I.2 Commercial and Institutional Buildings and Facilities - the same emission sources in commercial and institutional buildings.
I.3 Manufacturing Industries and Construction - the same emission sources in manufacturing and construction.
I.4 Energy Industries - energy used in power plant auxiliary operations, or energy generation supplied to the grid.
I.5 Agriculture, Forestry, and Fishing Activities - the same emission sources in agriculture, forestry, and fishing.
I.6 Non-Specified Sources - the same emission sources where no sector is specified.
I.7 Fugitive Emissions from Mining, Processing, Storage, and Transportation of Coal.
I.8 Fugitive Emissions from Oil and Natural Gas Systems.

Instructions for Classification:
1. Read the mitigation action description carefully.
2. Determine what type of emissions the action targets.
3. Determine the sector or activity associated with the action.
4. Classify the action into one of the categories (I.1 to I.8).
5. Provide a clear justification for the classification.

Action: "%s"

Only return the category name on the first line and the justification on the following lines.
`

// ClassifyAction builds the per-row classification prompt for one action
// description.
func ClassifyAction(action string) string {
	return fmt.Sprintf(classifyTemplate, action)
}
