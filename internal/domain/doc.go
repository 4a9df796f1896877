// Package domain defines the core business entities of the shopping
// list service and the validation rules that apply to them regardless
// of transport or storage.
package domain
