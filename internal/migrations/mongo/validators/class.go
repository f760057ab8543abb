package validators

import "go.mongodb.org/mongo-driver/bson"

// ClassValidator is the $jsonSchema applied to the Classes collection.
// available_slots has no lower bound here because the conditional
// decrement already guarantees it never goes below zero; the schema
// guards shape, not business rules.
func ClassValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "name", "instructor", "start_time", "duration_minutes", "total_slots", "available_slots"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "int",
					"minimum":     1,
					"description": "external class id, assigned by seeding",
				},
				"name": bson.M{
					"bsonType":  "string",
					"minLength": 2,
					"maxLength": 100,
				},
				"instructor": bson.M{
					"bsonType":  "string",
					"minLength": 2,
					"maxLength": 100,
				},
				"start_time": bson.M{
					"bsonType":    "date",
					"description": "UTC start instant",
				},
				"duration_minutes": bson.M{
					"bsonType": "int",
					"minimum":  1,
				},
				"total_slots": bson.M{
					"bsonType": "int",
					"minimum":  1,
				},
				"available_slots": bson.M{
					"bsonType": "int",
					"minimum":  0,
				},
			},
		},
	}
}
