// Package models defines the core domain models for Dutchie.
//
// # Models
//
//   - Person: someone taking part in a shared expense
//   - Item: a purchasable line, either ManualItem or ReceiptItem
//   - ReceiptGroup: the items of one scanned receipt, with a single payer
//   - Transfer: a settlement payment from one person to another
//
// # Design Principles
//
// 1. **Tagged items**: ManualItem and ReceiptItem carry only the fields that
// are meaningful for their source, so payer and assignment rules cannot be
// mixed up at runtime.
// 2. **Exact money**: every amount is a decimal.Decimal rounded to cents.
// 3. **Avoid circular references**: use ID strings instead of pointers for
// relationships.
// 4. **Derived values are never stored**: balances and transfers are
// recomputed from people and items on demand.
package models
