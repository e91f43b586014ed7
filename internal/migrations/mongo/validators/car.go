package validators

import "go.mongodb.org/mongo-driver/bson"

var CarValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"make",
			"model",
			"year",
			"fuel_type",
			"seats",
			"body_style",
			"license_plate",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"make": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"model": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"year": bson.M{
				"bsonType": "int",
				"minimum":  1950,
				"maximum":  2100,
			},

			"fuel_type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Electric",
					"Hybrid",
					"Gasoline",
					"Diesel",
				},
			},

			"seats": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  12,
			},

			"body_style": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 50,
			},

			"license_plate": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20,
			},

			"image": bson.M{
				"bsonType": "string",
			},
		},
	},
}
