// Package geo provides great-circle distance computation and distance
// formatting for in-city tracking ranges.
//
// Distances use the haversine formula on a spherical-earth approximation,
// which is accurate to well under 0.5% for the sub-50km distances this
// system deals with.
package geo
