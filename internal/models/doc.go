// Package models defines the core domain models for the school portal.
//
// # Records
//
//   - Student: an enrolled (or pending) learner, with billing history,
//     academic record and uploaded enrollment documents
//   - Transaction: one billing ledger entry on a student account
//   - Course: a program with its curriculum and fee schedule
//   - User: a staff account (registrar, finance, teacher, super admin)
//   - SystemConfig: the current academic term and department list
//   - PasswordRequest: a self-service password reset ticket
//
// # Design Principles
//
//  1. Students own their transactions, records and documents. There are no
//     back-pointers; relationships to courses and users are ID strings.
//  2. Money is always decimal.Decimal. Amounts are stored as entered; the sign
//     convention lives in the ledger package, not here.
//  3. Student.Balance is a cached value. The storage layer overwrites it from
//     the transaction list on every write.
package models
