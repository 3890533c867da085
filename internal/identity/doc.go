// Package identity generates and inspects cellular device identifiers used in
// synthetic test data: IMEI (with Luhn check digit), ICCID and IMSI.
package identity
