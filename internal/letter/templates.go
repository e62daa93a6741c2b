package letter

// CompanyFooter is appended by document renderers under every letter.
const CompanyFooter = `Autaway Ltd t.a Darlands   Suite 2063 6-8 Revenge Road Lordswood Kent ME5 8UD
E: info@darlands.co.uk     W: darlands.co.uk     Company No. 12185075`

// The letter bodies are verbatim house templates. Substitutions, in
// order: date, recipient block (names plus address), salutation, and
// for the agreement letters the signing-page ordinal.

const annualLetterTemplate = `%s

%s


Dear %s

Re: Electrical Equipment on your Land – Wayleave Agreement

We are pleased to inform you that we have now secured agreement for payment to be made to you from Scottish & Southern Energy (SSE).

Please find enclosed two copies of your Wayleave agreement which ALL registered homeowners must sign. These documents confirm that SSE hold electrical equipment on your land and as such they will now make a wayleave payment to you.

The amount being offered to you is confirmed on the agreement under 'Section 1: the Wayleave Payment'.

To help you complete the agreement, please follow these steps for both copies of the wayleave agreements:

        1) All homeowners must sign on the %s PAGE
        2) All homeowners must sign and date on the FOURTH PAGE (Title Plan)
        3) Send both copies back to us in the prepaid envelope provided

Please note that there is no cost, or charge to you whatsoever for us setting your wayleave up. All the monies for the wayleave will be paid to, and kept by you.

Yours sincerely,






Paul Wakeford
Partner
DARLANDS`

const fifteenYearLetterTemplate = `%s

%s


Dear %s

Re: Electrical Equipment on your Land – Wayleave Agreement

We are pleased to inform you that we have now secured agreement for payment to be made to you from Scottish & Southern Energy (SSE).

Please find enclosed two copies of your Wayleave agreement which ALL registered homeowners must sign. These documents confirm that SSE hold electrical equipment on your land and as such they will now make a wayleave payment to you.

The amount being offered to you is confirmed on the agreement under 'Section 1: the Wayleave Payment'.

To help you complete the agreement, please follow these steps for both copies of the wayleave agreements:

        1) All homeowners must sign on the %s PAGE
        2) All homeowners must sign and date on the FOURTH PAGE (Title Plan)
        3) Send both copies back to us in the prepaid envelope provided

Please note that there is no cost, or charge to you whatsoever for us setting your wayleave up. All the monies for the wayleave will be paid to, and kept by you.

Yours sincerely,






Paul Wakeford
Partner
DARLANDS`

const completionLetterTemplate = `%s

%s


Dear %s

Re: Completed Wayleave Enclosed

I am pleased to enclose your countersigned wayleave with SSE accompanied by the cheque payment from them. This now completes the wayleave process for you and we will therefore close our files.

It has been a pleasure representing you in this matter.

Yours sincerely,






Paul Wakeford
Partner
DARLANDS
`
