// Package mongodb implements the KnowledgeStore port over the official
// MongoDB driver. Documents decode into bson.M so store-native values
// (ObjectIDs, Binary wrappers, DateTimes) survive untouched for the
// normaliser to rewrite.
package mongodb
