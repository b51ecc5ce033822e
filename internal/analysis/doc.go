// Package analysis implements the account screening rules applied to
// uploaded loan and deposit registers.
//
// Every rule is a pure function of a table and its column parameters:
//
//	FilterByQuarter      rows dated within 90 days of the quarter end
//	MaturedWithBalance   matured accounts still carrying a positive balance
//	ZeroInterest         accounts booked at an interest rate of exactly 0
//	CrossReference       same customer, different account, disbursed in the
//	                     target months and later written off or marked NPA
//	SameDayClosure       accounts disbursed and closed on the same day
//
// The Load*/Get* variants take the raw workbook stream, load it with
// table.Load and apply the rule. None of them keep state between calls.
package analysis
