package scoring

import "fmt"

// IdentityExtractionPrompt instructs the vision extractor to pull identity
// fields from official Indian documents.
const IdentityExtractionPrompt = `You are extracting user identity details from official Indian documents (PAN card, Aadhaar card).
Strictly extract:
- Full Name
- PAN Number (if available)
- Aadhaar Number (if available)
- Phone Number (if available)

Output format (plain text):
Name: [full name]
PAN: [PAN number]
Aadhaar: [12-digit number]
Phone: [10-digit number]

If irrelevant or no values found, return only: "Invalid document"`

// FinancialExtractionPrompt instructs the vision extractor to pull facts
// from financial documents.
const FinancialExtractionPrompt = `You are analyzing financial documents to evaluate a user's financial reliability.
Documents may include:
- Income Tax Returns (ITR)
- Electricity bills
- Gas bills
- Rent receipts
- Water bills
- Phone/Internet bills
- Bank statements
- Property tax receipts
- Insurance premium receipts

Extract any details like:
- Document type
- Payment amounts
- Due dates / payment dates
- Account holder names
- Outstanding dues (if any)

If document is invalid or irrelevant, return: "Invalid financial document"

Output format (plain text):
Document Type: [type]
Amount: [amount]
Date: [date]
Account Holder: [name]
Outstanding Due: [yes/no]
Notes: [any notes]`

// ReliabilityPrompt asks the scorer to judge combined financial evidence
// inside the documented scoring bands.
func ReliabilityPrompt(combinedData string) string {
	return fmt.Sprintf(`You are evaluating a user's financial reliability based on their submitted financial documents.

Scoring Guidelines:
- High Trust Score (85-95): Multiple valid, recent documents showing consistent, timely payments.
- Medium Trust Score (50-70): Few documents, minor inconsistencies, occasional late payments.
- Low Trust Score (0-30): Documents missing, invalid, showing overdue payments or financial instability.

User's financial document data:
%s

Respond with:
Score: [number]
Explanation: [short reason]`, combinedData)
}
